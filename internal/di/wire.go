//go:build wireinject
// +build wireinject

package di

import (
	"RiskFolio/pkg/config"
	"RiskFolio/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideMetrics,

		// Storage
		ProvideDB,
		ProvideUserStore,
		ProvidePortfolioStore,
		ProvideHoldingStore,
		ProvideSnapshotStore,
		ProvideCache,
		ProvideClickHouseClient,
		ProvideArchiver,

		// Messaging
		ProvideKafkaProducer,
		ProvidePublisher,

		// Risk engines
		ProvideEngine,
		ProvideRemoteEngine,

		// Use cases
		ProvideAuthService,
		ProvidePortfolioService,
		ProvideHoldingService,
		ProvideRiskService,

		// Price feed
		ProvidePriceStream,
		ProvidePriceUpdater,

		// HTTP
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
