// cmd/queueviz/root.go
package queueviz

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/queueviz/internal/config"
	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/figure"
	"github.com/mwiater/queueviz/internal/logging"
)

// cfg is resolved by the root command before any subcommand runs.
var cfg config.Config

// rootCmd is the base Cobra command for the queueviz application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "queueviz",
	Short: "Explore queue benchmark timings",
	Long: `queueviz loads the array, linked list and object queue benchmark fixtures,
summarises them and draws scatterplots, histograms, boxplots and median
profiles of their enqueue and dequeue times.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = loaded
		if _, err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
			return err
		}
		slog.Debug("configuration resolved", "data_dir", cfg.DataDir, "format", cfg.Format)
		return nil
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringP("config", "c", "", "config file (default ./queueviz.{yaml,json,toml})")
	f.StringP("data-dir", "d", "data", "directory holding the 18 benchmark fixtures")
	f.String("format", "auto", "fixture format: json, csv or auto")
	f.String("log-level", "info", "log level: debug, info, warn or error")
	f.String("palette", "Dark2", "ColorBrewer qualitative palette name")
	f.Int("width", 670, "figure width in pixels")
	f.Int("height", 500, "figure height in pixels")
	f.String("out-dir", ".", "directory figures are written to")

	for key, flag := range map[string]string{
		config.KeyConfig:   "config",
		config.KeyDataDir:  "data-dir",
		config.KeyFormat:   "format",
		config.KeyLogLevel: "log-level",
		config.KeyPalette:  "palette",
		config.KeyWidth:    "width",
		config.KeyHeight:   "height",
		config.KeyOutDir:   "out-dir",
	} {
		viper.BindPFlag(key, f.Lookup(flag))
	}
}

// loadData reads and structures the fixtures named by cfg.
func loadData(ctx context.Context) (*dataset.Structured, error) {
	format, err := dataset.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return dataset.LoadStructured(ctx, os.DirFS(cfg.DataDir), format)
}

// layout is the default layout resized to the configured dimensions.
func layout() figure.Layout {
	l := figure.DefaultLayout()
	l.Width = float64(cfg.Width)
	l.Height = float64(cfg.Height)
	return l
}

// palette resolves the configured palette, falling back to the default.
func palette() figure.Palette {
	p, err := figure.NewPalette(cfg.Palette)
	if err != nil {
		slog.Warn("unknown palette, using default", "palette", cfg.Palette, "error", err)
		return figure.DefaultPalette()
	}
	return p
}
