package contracts

import (
	"context"
	"shrm-web/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	ListServices(ctx context.Context) []responses.Service
}
