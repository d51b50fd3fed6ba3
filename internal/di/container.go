// Package di provides dependency injection configuration for the BrightSide server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/brightsideapp/brightside-server/internal/config"
	"github.com/brightsideapp/brightside-server/internal/di/providers"
	"github.com/brightsideapp/brightside-server/internal/location"
	"github.com/brightsideapp/brightside-server/internal/logger"
	"github.com/brightsideapp/brightside-server/internal/places/geoapify"
	"github.com/brightsideapp/brightside-server/internal/places/osm"
	"github.com/brightsideapp/brightside-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideSSEManager)
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideBootstrap)

	// Place-data adapters
	do.Provide(injector, providers.ProvideGeoapifyClient)
	do.Provide(injector, providers.ProvideOSMClient)

	// Location layer
	do.Provide(injector, providers.ProvideLocationService)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Business services
	do.Provide(injector, providers.ProvideDirectoryService)
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvideBookmarkService)
	do.Provide(injector, providers.ProvideDealService)
	do.Provide(injector, providers.ProvideSessionService)
	do.Provide(injector, providers.ProvideReportService)

	// Workers
	do.Provide(injector, providers.ProvideSeedWatcher)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.SSEManagerHandle](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.Bootstrap](injector)
	_ = do.MustInvoke[*geoapify.Client](injector)
	_ = do.MustInvoke[*osm.Client](injector)
	_ = do.MustInvoke[*location.Service](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)

	// Business services
	_ = do.MustInvoke[*service.DirectoryService](injector)
	_ = do.MustInvoke[*service.ReviewService](injector)
	_ = do.MustInvoke[*service.BookmarkService](injector)
	_ = do.MustInvoke[*service.DealService](injector)
	_ = do.MustInvoke[*service.SessionService](injector)
	_ = do.MustInvoke[*service.ReportService](injector)

	// Workers
	_ = do.MustInvoke[*providers.SeedWatcherHandle](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Trigger search reindex if needed
	providers.TriggerSearchReindexIfNeeded(injector)

	return nil
}
