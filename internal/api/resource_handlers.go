package api

import (
	"net/http"

	"github.com/bookdenapp/bookden-server/internal/http/response"
)

// handleResolve resolves a hierarchical book:// address to its query
// result. GET /api/v1/resolve?uri=book://collection/...
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		response.BadRequest(w, "uri parameter is required", s.logger)
		return
	}

	result, err := s.resolver.Resolve(uri)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}
