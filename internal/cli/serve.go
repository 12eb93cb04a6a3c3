package cli

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/okian/alumnihub/internal/adapters/http/api"
	"github.com/okian/alumnihub/internal/adapters/http/site"
	"github.com/okian/alumnihub/internal/adapters/http/swagger"
	service "github.com/okian/alumnihub/internal/app"
	"github.com/okian/alumnihub/internal/config"
	"github.com/okian/alumnihub/pkg/logger"
	"github.com/okian/alumnihub/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// HTTP server timeouts and background intervals.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	systemMetricsInterval     = 10 * time.Second
	datasetRefreshInterval    = 5 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func newServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web site and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides ALUMNIHUB_ADDR")
	return cmd
}

// NewHandler builds the HTTP handler serving the site, docs and API for svc.
func NewHandler(ctx context.Context, svc *service.Service) http.Handler {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc).Register(ctx, mux)
	site.Register(ctx, mux)
	return api.RequestID(mux)
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Named("serve")

	// Go and process collectors are not exported; the system gauges below cover them.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}
	svc := service.New(
		service.WithProvider(provider),
		service.WithOptionCacheSize(cfg.OptionCacheSize),
		service.WithLogger(log),
	)
	if err := svc.Start(ctx); err != nil {
		_ = provider.Close()
		return err
	}
	defer svc.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewHandler(ctx, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.String("data_source", cfg.DataSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		startSystemMetricsUpdater(gctx)
		return nil
	})
	g.Go(func() error {
		startDatasetRefresher(gctx, svc, log)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info(gctx, "shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(gctx, "server shutdown failed", logger.Error(err))
			return err
		}
		return nil
	})

	err = g.Wait()
	log.Info(ctx, "server stopped")
	return err
}

func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// startDatasetRefresher polls the data source so dataset gauges and file
// reloads do not wait for the next request.
func startDatasetRefresher(ctx context.Context, svc *service.Service, log logger.Logger) {
	ticker := time.NewTicker(datasetRefreshInterval)
	defer ticker.Stop()

	var lastVersion string
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h, err := svc.Health(ctx)
			if err != nil {
				log.Warn(ctx, "dataset refresh failed", logger.Error(err))
				continue
			}
			if lastVersion != "" && h.Version != lastVersion {
				log.Info(ctx, "dataset changed",
					logger.String("from", lastVersion),
					logger.String("to", h.Version))
			}
			lastVersion = h.Version
		}
	}
}

func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
