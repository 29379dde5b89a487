package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookdenapp/bookden-server/internal/query"
)

// Version is the server version reported by the instance endpoint.
const Version = "0.3.0"

// Instance describes this server process.
type Instance struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	BookCount  int      `json:"book_count"`
	Operations []string `json:"operations"`
}

// operationNames is the table of named operations this server exposes.
var operationNames = []string{
	"list_books",
	"total_books",
	"get_book_detail",
	"search_books",
	"recommend_book",
	"top_books",
	"random_book",
	"list_genres",
	"summarize_book",
}

// InstanceService reports server identity. The instance ID is generated
// once at startup; the catalog never changes after that point, so the
// reported book count is stable for the process lifetime.
type InstanceService struct {
	instance Instance
	logger   *slog.Logger
}

// NewInstanceService creates the instance identity for this process.
func NewInstanceService(name string, engine *query.Engine, logger *slog.Logger) *InstanceService {
	return &InstanceService{
		instance: Instance{
			ID:         uuid.NewString(),
			Name:       name,
			Version:    Version,
			BookCount:  engine.Count(),
			Operations: operationNames,
		},
		logger: logger,
	}
}

// GetInstance returns the server identity.
func (s *InstanceService) GetInstance(ctx context.Context) Instance {
	return s.instance
}
