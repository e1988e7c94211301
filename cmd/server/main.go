package main

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	v1 "github.com/braintap/kpi-engine/internal/api/v1"
	"github.com/braintap/kpi-engine/internal/config"
	"github.com/braintap/kpi-engine/internal/datasource"
	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/logger"
	"github.com/braintap/kpi-engine/internal/rest"
	"github.com/braintap/kpi-engine/internal/service"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			datasource.NewFetcher,
			datasource.NewLoader,
			newStore,
			newServiceParams,
			service.NewMetricsService,
			v1.NewMetricsHandler,
			newHTTPServer,
		),
		fx.Invoke(
			initSentry,
			startServer,
		),
	)

	app.Run()
}

// newStore performs the one-shot snapshot load at startup. The service has
// nothing useful to serve without the datasets, so a failed load aborts
// boot.
func newStore(loader *datasource.Loader, log *logger.Logger) (*dataset.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshot, err := loader.Load(ctx)
	if err != nil {
		log.Errorw("failed to load dataset snapshot", "error", err)
		return nil, err
	}
	return dataset.NewStore(*snapshot), nil
}

func newServiceParams(cfg *config.Configuration, log *logger.Logger, store *dataset.Store) service.ServiceParams {
	return service.ServiceParams{
		Logger: log,
		Config: cfg,
		Store:  store,
	}
}

func newHTTPServer(handler *v1.MetricsHandler, cfg *config.Configuration, log *logger.Logger) *http.Server {
	router := rest.NewRouter(rest.Handlers{Metrics: handler}, cfg, log)
	return &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func initSentry(lc fx.Lifecycle, cfg *config.Configuration, log *logger.Logger) error {
	if !cfg.Sentry.Enabled {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		TracesSampleRate: cfg.Sentry.SampleRate,
	})
	if err != nil {
		log.Errorw("failed to initialize sentry", "error", err)
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		},
	})
	return nil
}

func startServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Infow("starting server", "address", server.Addr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
