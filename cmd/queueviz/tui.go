// cmd/queueviz/tui.go
package queueviz

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mwiater/queueviz/internal/cli"
	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/logging"
)

var startTUI = cli.StartTUI

var logFile string

// tuiCmd represents the 'tui' command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the benchmarks interactively",
	Long: `The 'tui' command opens a terminal viewer. Keys switch size, metric, chart and
visible implementations, and w writes the current figure as SVG to out_dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := dataset.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		return startTUI(cli.Options{
			FS:       os.DirFS(cfg.DataDir),
			Format:   format,
			Layout:   layout(),
			Palette:  palette(),
			OutDir:   cfg.OutDir,
			LogFile:  logFile,
			LogLevel: level,
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVar(&logFile, "log-file", "debug.log", "file receiving logs while the viewer runs")
}
