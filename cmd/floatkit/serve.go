package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/floatkit-dev/floatkit"
	"github.com/floatkit-dev/floatkit/pkg/bridge"
	"github.com/floatkit-dev/floatkit/pkg/overlay"
	"github.com/floatkit-dev/floatkit/pkg/tooltip"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo overlay server",
		Long: `Serve a demo page whose hover targets are driven by server-side
controllers over a WebSocket bridge. Prometheus metrics are exposed
on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, tracing)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8650", "Listen address")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Trace event dispatch via the global OpenTelemetry provider")

	return cmd
}

func runServe(addr string, tracing bool) error {
	logger := slog.Default().With("component", "serve")
	metrics := bridge.NewMetrics()

	sessionOpts := []bridge.SessionOption{
		bridge.WithMiddleware(metrics.Middleware()),
	}
	if tracing {
		sessionOpts = append(sessionOpts, bridge.WithMiddleware(bridge.OpenTelemetry()))
	}

	ws := bridge.Handler(func(s *bridge.Session) {
		factory := metrics.InstrumentFactory(s.Factory())

		floatkit.Hover(factory, s.Element("save"), "Save your changes")
		floatkit.Hover(factory, s.Element("publish"), "Publish this draft",
			tooltip.WithPlacement(overlay.PlacementTop))
		floatkit.HoverBody(factory, s.Element("profile"),
			overlay.BodyFunc(func(p overlay.Props) any {
				return map[string]any{"card": "profile", "user": p["user"]}
			}),
			overlay.Props{"user": "demo"})

		floatkit.Menu(factory, s.Element("actions"), s.Element("document"),
			overlay.Content{Label: "Actions"})
	}, bridge.WithSessionOptions(sessionOpts...))

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, demoPage)
	})
	r.Handle("/ws", ws)
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", addr)
		errc <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
