package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookdenapp/bookden-server/internal/config"
	"github.com/bookdenapp/bookden-server/internal/logger"
	"github.com/bookdenapp/bookden-server/internal/query"
	"github.com/bookdenapp/bookden-server/internal/resource"
	"github.com/bookdenapp/bookden-server/internal/service"
	"github.com/bookdenapp/bookden-server/internal/summary"
)

// ProvideSummaryRenderer provides the book summary renderer.
func ProvideSummaryRenderer(i do.Injector) (*summary.Renderer, error) {
	engine := do.MustInvoke[*query.Engine](i)
	return summary.NewRenderer(engine), nil
}

// ProvideResolver provides the book:// address resolver.
func ProvideResolver(i do.Injector) (*resource.Resolver, error) {
	engine := do.MustInvoke[*query.Engine](i)
	return resource.NewResolver(engine), nil
}

// ProvideCatalogService provides the named catalog operations.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	engine := do.MustInvoke[*query.Engine](i)
	renderer := do.MustInvoke[*summary.Renderer](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(engine, renderer, log.Logger), nil
}

// ProvideInstanceService provides the server identity service.
func ProvideInstanceService(i do.Injector) (*service.InstanceService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	engine := do.MustInvoke[*query.Engine](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewInstanceService(cfg.Server.Name, engine, log.Logger), nil
}
