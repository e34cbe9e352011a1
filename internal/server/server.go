// internal/server/server.go
// Package server exposes the structured dataset over HTTP: a JSON summary
// and rendered charts for any view state reachable through the reducer.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/figure"
	"github.com/mwiater/queueviz/internal/report"
)

// Options configures a Server.
type Options struct {
	Layout  figure.Layout
	Palette figure.Palette
	// Source is echoed in the summary report, usually the data directory.
	Source string
	Logger *slog.Logger
}

// Server serves one immutable dataset. Handlers share it without locking;
// every request derives its own view state.
type Server struct {
	data    *dataset.Structured
	summary report.Report
	opts    Options
	router  *gin.Engine
	handler http.Handler
}

// New builds the server and its routes.
func New(data *dataset.Structured, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Layout.Width == 0 {
		opts.Layout = figure.DefaultLayout()
	}
	if len(opts.Palette) == 0 {
		opts.Palette = figure.DefaultPalette()
	}
	s := &Server{
		data:    data,
		summary: report.Build(data, opts.Source),
		opts:    opts,
	}
	s.router = s.routes()
	s.handler = gzhttp.GzipHandler(newCORS().Handler(s.router))
	return s
}

// newCORS allows read-only cross-origin use of the API, e.g. from a
// dashboard embedding the charts.
func newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodHead, http.MethodGet},
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Encoding", "X-Request-ID"},
		MaxAge:         int((10 * time.Minute).Seconds()),
	})
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(s.opts.Logger))
	r.Use(SecurityHeaders())

	r.GET("/healthz", s.healthHandler)
	api := r.Group("/api")
	{
		api.GET("/summary", s.summaryHandler)
		api.GET("/chart", s.chartHandler)
	}
	return r
}

// Handler returns the HTTP handler serving every route, with CORS and
// response compression applied.
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.opts.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
