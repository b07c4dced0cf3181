package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/rescache/internal/adapters/telemetry"
	"go.trai.ch/rescache/internal/adapters/watcher"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// WatchOptions configures watch mode.
type WatchOptions struct {
	CheckOptions
	// MetricsAddr serves Prometheus metrics on /metrics when set.
	MetricsAddr string
}

// Watch validates the workspace, prints the result and then keeps
// re-validating resources whose files change until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	tp := telemetry.Setup(telemetry.NewLogBridge(a.logger))
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	s, err := a.open(ctx, opts.CheckOptions)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.build(ctx); err != nil {
		return err
	}
	s.renderAll()

	var ln net.Listener
	if opts.MetricsAddr != "" {
		ln, err = net.Listen("tcp", opts.MetricsAddr)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to listen for metrics"), "addr", opts.MetricsAddr)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	if err := a.watcher.Start(gctx, s.ws.Root); err != nil {
		if ln != nil {
			_ = ln.Close()
		}
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(s.ws.Debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-gctx.Done():
		}
	})
	defer debouncer.Stop()

	g.Go(func() error {
		for event := range a.watcher.Events() {
			a.logger.Debug(event.Operation.String() + " " + event.Path)
			debouncer.Add(event.Path)
		}
		// The stream may end before ctx does; apply what is still waiting.
		debouncer.Flush()
		return nil
	})

	if ln != nil {
		g.Go(func() error {
			return serveMetrics(gctx, ln, s.registry, a.logger)
		})
	}

	g.Go(func() error {
		return s.loop(gctx, batches)
	})

	a.logger.Info(fmt.Sprintf("watching %s (%d referenced files)", s.ws.Root, s.index.Len()))
	return g.Wait()
}

// serveMetrics serves the registry on ln until ctx is done.
func serveMetrics(ctx context.Context, ln net.Listener, reg *prometheus.Registry, log ports.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: shutdownTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Info("serving metrics on http://" + ln.Addr().String() + "/metrics")

	select {
	case err := <-errCh:
		return zerr.With(zerr.Wrap(err, "metrics server failed"), "addr", ln.Addr().String())
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
