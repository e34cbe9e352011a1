// cmd/queueviz/serve.go
package queueviz

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/queueviz/internal/config"
	"github.com/mwiater/queueviz/internal/server"
)

// runServer is swapped in tests.
var runServer = func(ctx context.Context, s *server.Server, addr string) error {
	return s.Run(ctx, addr)
}

// serveCmd implements 'serve', which exposes summaries and charts over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve summaries and charts over HTTP",
	Long: `The 'serve' command loads the fixtures once and serves GET /healthz,
GET /api/summary and GET /api/chart until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		data, err := loadData(ctx)
		if err != nil {
			return err
		}
		if cfg.LogLevel != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}
		s := server.New(data, server.Options{
			Layout:  layout(),
			Palette: palette(),
			Source:  cfg.DataDir,
			Logger:  slog.Default(),
		})
		return runServer(ctx, s, cfg.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "listen address")
	viper.BindPFlag(config.KeyAddr, serveCmd.Flags().Lookup("addr"))
}
