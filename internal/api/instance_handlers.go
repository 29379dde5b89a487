package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookdenapp/bookden-server/internal/service"
)

func (s *Server) registerInstanceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get_instance",
		Method:      http.MethodGet,
		Path:        "/api/v1/instance",
		Summary:     "Get instance",
		Description: "Returns server identity and the available operations",
		Tags:        []string{"Instance"},
	}, s.handleGetInstance)
}

type InstanceOutput struct {
	Body service.Instance
}

func (s *Server) handleGetInstance(ctx context.Context, _ *struct{}) (*InstanceOutput, error) {
	return &InstanceOutput{Body: s.services.Instance.GetInstance(ctx)}, nil
}
