//go:build wireinject
// +build wireinject

package di

import (
	"SolarAPI/pkg/config"
	"SolarAPI/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideCache,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,

		// Repositories
		ProvideUserRepository,
		ProvideTaskRepository,
		ProvideSalesStore,
		ProvideEventPublisher,

		// Engine and use cases
		ProvideCalculator,
		ProvideAnalyticsService,
		ProvideUserService,
		ProvideTaskService,
		ProvideSalesIngestHandler,

		// HTTP and application server
		ProvideRouter,
		ProvideApp,
	)
	return &server.App{}, nil
}
