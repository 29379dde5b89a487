package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookdenapp/bookden-server/internal/catalog"
	"github.com/bookdenapp/bookden-server/internal/config"
	"github.com/bookdenapp/bookden-server/internal/logger"
	"github.com/bookdenapp/bookden-server/internal/query"
)

// ProvideCatalog loads the book catalog exactly once, before any query is
// served. The catalog is immutable afterwards and shared read-only.
func ProvideCatalog(i do.Injector) (*catalog.Catalog, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog loaded", "path", cfg.Catalog.Path, "books", cat.Len())

	return cat, nil
}

// ProvideQueryEngine provides the query engine over the loaded catalog.
func ProvideQueryEngine(i do.Injector) (*query.Engine, error) {
	cat := do.MustInvoke[*catalog.Catalog](i)
	return query.NewEngine(cat), nil
}
