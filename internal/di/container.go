// Package di provides dependency injection configuration for the Bookden
// server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bookdenapp/bookden-server/internal/catalog"
	"github.com/bookdenapp/bookden-server/internal/config"
	"github.com/bookdenapp/bookden-server/internal/di/providers"
	"github.com/bookdenapp/bookden-server/internal/logger"
	"github.com/bookdenapp/bookden-server/internal/query"
	"github.com/bookdenapp/bookden-server/internal/resource"
	"github.com/bookdenapp/bookden-server/internal/service"
	"github.com/bookdenapp/bookden-server/internal/summary"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Catalog layer
	do.Provide(injector, providers.ProvideCatalog)
	do.Provide(injector, providers.ProvideQueryEngine)

	// Business services
	do.Provide(injector, providers.ProvideSummaryRenderer)
	do.Provide(injector, providers.ProvideResolver)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideInstanceService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services in dependency order. The catalog load
// happens here, before any query is served; a load failure aborts startup.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*catalog.Catalog](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*query.Engine](injector)
	_ = do.MustInvoke[*summary.Renderer](injector)
	_ = do.MustInvoke[*resource.Resolver](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*service.InstanceService](injector)

	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
