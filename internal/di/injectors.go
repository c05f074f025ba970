//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"arenastreams/internal"
	"arenastreams/internal/controllers"
	"arenastreams/internal/providers"
	"arenastreams/internal/services"
	"arenastreams/internal/storage"
	"arenastreams/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,

		services.NewVisitTracker,
		services.NewViewerRegistry,
		services.NewMatchService,

		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,

		controllers.NewAdblockController,
		controllers.NewViewersController,
		controllers.NewMatchesController,
		controllers.NewDecoyController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
