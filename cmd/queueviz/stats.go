// cmd/queueviz/stats.go
package queueviz

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/report"
)

var statsFlags struct {
	size   int
	impl   string
	metric string
	json   bool
}

// statsCmd implements 'stats', which prints per-series summary statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics for every series",
	Long: `The 'stats' command prints the sample count, quartiles, 95th percentile and
filtered mean and standard deviation of every size, implementation and metric.
Narrow the output with --size, --impl and --metric, or emit JSON with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			size   dataset.Size
			impl   dataset.Implementation
			metric dataset.Metric
			err    error
		)
		if statsFlags.size != 0 {
			if size = dataset.Size(statsFlags.size); !size.Valid() {
				return fmt.Errorf("unknown size %d", statsFlags.size)
			}
		}
		if statsFlags.impl != "" {
			if impl, err = dataset.ParseImplementation(statsFlags.impl); err != nil {
				return err
			}
		}
		if statsFlags.metric != "" {
			if metric, err = dataset.ParseMetric(statsFlags.metric); err != nil {
				return err
			}
		}

		data, err := loadData(cmd.Context())
		if err != nil {
			return err
		}
		rep := report.Build(data, cfg.DataDir)
		rep.Summaries = report.Filter(rep.Summaries, size, impl, metric)

		if statsFlags.json {
			return report.WriteJSON(cmd.OutOrStdout(), rep)
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Table(rep.Summaries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	f := statsCmd.Flags()
	f.IntVar(&statsFlags.size, "size", 0, "only this size bucket")
	f.StringVar(&statsFlags.impl, "impl", "", "only this implementation")
	f.StringVar(&statsFlags.metric, "metric", "", "only this metric (enqueue or dequeue)")
	f.BoolVar(&statsFlags.json, "json", false, "print JSON instead of a table")
}
