package di

import (
	"context"
	"fmt"
	"time"

	"RiskFolio/internal/domain/models"
	"RiskFolio/internal/domain/repository"
	"RiskFolio/internal/handler/api"
	internalrepo "RiskFolio/internal/repository"
	"RiskFolio/internal/services/pricefeed"
	"RiskFolio/internal/services/risk"
	"RiskFolio/internal/usecase"
	"RiskFolio/pkg/cache"
	pkgch "RiskFolio/pkg/clickhouse"
	"RiskFolio/pkg/config"
	"RiskFolio/pkg/database"
	xhttp "RiskFolio/pkg/http"
	pkgkafka "RiskFolio/pkg/kafka"
	applogger "RiskFolio/pkg/logger"
	"RiskFolio/pkg/metrics"
	"RiskFolio/pkg/server"

	"gorm.io/gorm"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideDB opens the SQLite database and migrates the schema.
func ProvideDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(db,
		&models.User{},
		&models.Portfolio{},
		&models.Holding{},
		&models.RiskSnapshot{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// ProvideUserStore creates the user repository.
func ProvideUserStore(db *gorm.DB) repository.Users {
	return internalrepo.NewUserStore(db)
}

// ProvidePortfolioStore creates the portfolio repository.
func ProvidePortfolioStore(db *gorm.DB) repository.Portfolios {
	return internalrepo.NewPortfolioStore(db)
}

// ProvideHoldingStore creates the holding repository.
func ProvideHoldingStore(db *gorm.DB) repository.Holdings {
	return internalrepo.NewHoldingStore(db)
}

// ProvideSnapshotStore creates the snapshot repository.
func ProvideSnapshotStore(db *gorm.DB) repository.Snapshots {
	return internalrepo.NewSnapshotStore(db)
}

// ProvideCache creates the cache backend. Redis when configured, otherwise
// an in-process cache so read-through behavior is identical in dev.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Enabled {
		c, err := cache.NewRedisCache(
			cache.WithAddr(cfg.Cache.Addr),
			cache.WithPassword(cfg.Cache.Password),
			cache.WithDB(cfg.Cache.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideClickHouseClient creates the ClickHouse client and ensures the
// archive schema exists. Returns nil when archiving is disabled.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.Archive.Host),
		pkgch.WithPort(cfg.Archive.Port),
		pkgch.WithDatabase(cfg.Archive.Database),
		pkgch.WithCredentials(cfg.Archive.User, cfg.Archive.Password),
		pkgch.WithAsyncInsert(cfg.Archive.AsyncInsert),
		pkgch.WithTimeouts(cfg.Archive.DialTimeout, cfg.Archive.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	table := cfg.Archive.Database + ".risk_snapshots"
	if err := client.InitSchema(ctx, internalrepo.Schema(cfg.Archive.Database, table)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return client, nil
}

// ProvideArchiver creates the snapshot archiver. Nil when archiving is disabled.
func ProvideArchiver(client *pkgch.Client, cfg *config.Config) repository.SnapshotArchiver {
	if client == nil {
		return nil
	}
	return internalrepo.NewClickHouseArchive(client.DB(), cfg.Archive.Database+".risk_snapshots")
}

// ProvideKafkaProducer creates the Kafka producer. Nil when events are disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, 0),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePublisher creates the event publisher. Nil when events are disabled.
func ProvidePublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.EventPublisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideEngine creates the local risk engine.
func ProvideEngine() *risk.Engine {
	return risk.NewEngine()
}

// ProvideRemoteEngine creates the remote risk engine client.
func ProvideRemoteEngine(cfg *config.Config) *risk.RemoteEngine {
	return risk.NewRemoteEngine(cfg)
}

// ProvideAuthService creates the auth service.
func ProvideAuthService(users repository.Users, cfg *config.Config) *usecase.AuthService {
	return usecase.NewAuthService(users, cfg)
}

// ProvidePortfolioService creates the portfolio service.
func ProvidePortfolioService(portfolios repository.Portfolios) *usecase.PortfolioService {
	return usecase.NewPortfolioService(portfolios)
}

// ProvideHoldingService creates the holding service.
func ProvideHoldingService(portfolios repository.Portfolios, holdings repository.Holdings) *usecase.HoldingService {
	return usecase.NewHoldingService(portfolios, holdings)
}

// ProvideRiskService creates the risk computation service.
func ProvideRiskService(
	portfolios repository.Portfolios,
	holdings repository.Holdings,
	snapshots repository.Snapshots,
	archiver repository.SnapshotArchiver,
	publisher repository.EventPublisher,
	c cache.Service,
	remote *risk.RemoteEngine,
	engine *risk.Engine,
	m repository.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.RiskService {
	return usecase.NewRiskService(
		portfolios, holdings, snapshots,
		archiver, publisher,
		c, cfg.Cache.TTL,
		remote, engine,
		m, logger,
	)
}

// ProvideHandler creates the API handler.
func ProvideHandler(
	logger *applogger.Logger,
	auth *usecase.AuthService,
	portfolios *usecase.PortfolioService,
	holdings *usecase.HoldingService,
	riskSvc *usecase.RiskService,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewHandler(logger, auth, portfolios, holdings, riskSvc,
		cfg.Auth.LoginRate, cfg.Auth.LoginBurst)
}

// ProvidePriceStream creates the market price stream. Nil when disabled.
func ProvidePriceStream(cfg *config.Config) repository.PriceStream {
	if !cfg.PriceFeed.Enabled {
		return nil
	}
	return pricefeed.New(cfg.PriceFeed.APIKey, cfg.PriceFeed.WebSocketURL, cfg.PriceFeed.PingInterval)
}

// ProvidePriceUpdater creates the price updater. Nil when the feed is disabled.
func ProvidePriceUpdater(
	stream repository.PriceStream,
	holdings repository.Holdings,
	cfg *config.Config,
	logger *applogger.Logger,
) *usecase.PriceUpdater {
	if stream == nil {
		return nil
	}
	return usecase.NewPriceUpdater(stream, holdings, cfg.PriceFeed.ReconnectDelay, logger)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	updater *usecase.PriceUpdater,
	c cache.Service,
	publisher repository.EventPublisher,
	chClient *pkgch.Client,
) *server.App {
	return server.New(cfg, logger, handler, updater, c, publisher, chClient)
}
