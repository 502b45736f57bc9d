package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"RiskFolio/internal/domain/repository"
	"RiskFolio/internal/usecase"
	"RiskFolio/pkg/cache"
	pkgch "RiskFolio/pkg/clickhouse"
	"RiskFolio/pkg/config"
	xhttp "RiskFolio/pkg/http"
	applogger "RiskFolio/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
	updater    *usecase.PriceUpdater
	cache      cache.Service
	publisher  repository.EventPublisher
	chClient   *pkgch.Client
}

// New creates the application. updater, publisher and chClient may be nil
// when the corresponding integration is disabled.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	updater *usecase.PriceUpdater,
	c cache.Service,
	publisher repository.EventPublisher,
	chClient *pkgch.Client,
) *App {
	httpServer := xhttp.NewServer(handler,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)
	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		updater:    updater,
		cache:      c,
		publisher:  publisher,
		chClient:   chClient,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.updater != nil {
		go func() {
			if err := a.updater.Start(ctx); err != nil && ctx.Err() == nil {
				a.logger.Error("price updater error", applogger.Error(err))
			}
		}()
		a.logger.Info("price updater started")
	}

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if a.updater != nil {
		if err := a.updater.Shutdown(ctx); err != nil {
			a.logger.Warn("price updater stop error", applogger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("kafka publisher close error", applogger.Error(err))
		}
	}
	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.logger.Warn("clickhouse close error", applogger.Error(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
