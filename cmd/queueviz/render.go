// cmd/queueviz/render.go
package queueviz

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/queueviz/internal/cli"
	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/figure"
	"github.com/mwiater/queueviz/internal/render"
	"github.com/mwiater/queueviz/internal/view"
)

var renderFlags struct {
	chart  string
	size   int
	metric string
	hide   []string
	raw    bool
	image  string
	out    string
	dump   bool
}

// renderCmd implements 'render', which draws one figure to a file.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one figure as SVG or PNG",
	Long: `The 'render' command draws a single figure for the selected chart, size and
metric. The file is written to --out, or to a name derived from the selection
inside out_dir. Use --out - to write to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, format, err := renderQuery()
		if err != nil {
			return err
		}
		data, err := loadData(cmd.Context())
		if err != nil {
			return err
		}
		state := view.Select(view.New(data), q)

		if renderFlags.dump {
			dumpState(cmd.OutOrStdout(), state)
		}

		l := layout()
		g := figure.Build(state, l, palette())

		if renderFlags.out == "-" {
			return render.Write(cmd.OutOrStdout(), g, int(l.Width), int(l.Height), format)
		}
		path := renderFlags.out
		if path == "" {
			path = filepath.Join(cfg.OutDir, cli.FigureFileName(state, format))
		}
		if err := render.WriteFile(path, g, int(l.Width), int(l.Height), format); err != nil {
			return err
		}
		slog.Info("figure written", "path", path, "chart", state.Chart, "size", state.Size, "metric", state.Metric)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.chart, "chart", string(view.Scatterplot), "scatterplot, histogram, boxplot or profile")
	f.IntVar(&renderFlags.size, "size", int(view.DefaultSize), "benchmark size bucket")
	f.StringVar(&renderFlags.metric, "metric", "dequeue", "enqueue or dequeue")
	f.StringSliceVar(&renderFlags.hide, "hide", nil, "implementations to hide (array, linked-list, object)")
	f.BoolVar(&renderFlags.raw, "raw", false, "plot raw series instead of outlier-filtered ones")
	f.StringVar(&renderFlags.image, "image-format", "svg", "svg or png")
	f.StringVarP(&renderFlags.out, "out", "o", "", "output file, - for stdout")
	f.BoolVar(&renderFlags.dump, "dump", false, "print the resolved view state")
}

// renderQuery validates the render flags.
func renderQuery() (view.Query, render.Format, error) {
	format, err := render.ParseFormat(renderFlags.image)
	if err != nil {
		return view.Query{}, "", err
	}
	chart, err := view.ParseChart(renderFlags.chart)
	if err != nil {
		return view.Query{}, "", err
	}
	size := dataset.Size(renderFlags.size)
	if !size.Valid() {
		return view.Query{}, "", fmt.Errorf("unknown size %d", renderFlags.size)
	}
	metric, err := dataset.ParseMetric(renderFlags.metric)
	if err != nil {
		return view.Query{}, "", err
	}
	filter := !renderFlags.raw
	q := view.Query{Size: size, Metric: metric, Chart: chart, Filter: &filter}
	for _, h := range renderFlags.hide {
		impl, err := dataset.ParseImplementation(h)
		if err != nil {
			return view.Query{}, "", err
		}
		q.Hide = append(q.Hide, impl)
	}
	return q, format, nil
}

// stateDump is the printable part of a view state.
type stateDump struct {
	Title   string
	Chart   view.Chart
	Size    dataset.Size
	Metric  dataset.Metric
	Filter  bool
	Visible []dataset.Implementation
	Points  []int
}

func dumpState(w io.Writer, s view.State) {
	d := stateDump{
		Title:   figure.Title(s),
		Chart:   s.Chart,
		Size:    s.Size,
		Metric:  s.Metric,
		Filter:  s.Filter,
		Visible: s.VisibleImplementations(),
	}
	for _, series := range s.Derived() {
		d.Points = append(d.Points, len(series))
	}
	pp.Fprintln(w, d)
}
