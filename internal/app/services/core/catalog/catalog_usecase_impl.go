package catalog

import (
	"context"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/responses"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	ServiceClient contracts.ServiceClient
	Log           *zap.Logger
}

func NewCatalogUsecase(serviceClient contracts.ServiceClient, logger *zap.Logger) contracts.CatalogUsecase {
	return &catalogUsecase{
		ServiceClient: serviceClient,
		Log:           logger,
	}
}

// ListServices never fails. Any backend error leaves the static catalog in place.
func (uc *catalogUsecase) ListServices(ctx context.Context) []responses.Service {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("catalogUsecase.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	static := StaticServices()
	list, err := uc.ServiceClient.GetServices(ctx)
	if err != nil {
		uc.Log.Warn("catalogUsecase.ListServices backend unavailable, using static catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return static
	}

	merged := Merge(static, list.Services)
	uc.Log.Info("catalogUsecase.ListServices succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(merged)),
	)
	return merged
}

// Merge overlays remote services on the static ones by slug. Non-empty remote
// fields win and availability always comes from the remote entry. Remote
// services without a static counterpart are appended in their original order.
func Merge(static, remote []responses.Service) []responses.Service {
	merged := make([]responses.Service, len(static), len(static)+len(remote))
	copy(merged, static)

	index := make(map[string]int, len(merged))
	for i, service := range merged {
		index[service.Slug] = i
	}

	for _, service := range remote {
		if service.Slug == "" {
			continue
		}
		i, ok := index[service.Slug]
		if !ok {
			index[service.Slug] = len(merged)
			merged = append(merged, service)
			continue
		}
		merged[i] = overlay(merged[i], service)
	}
	return merged
}

func overlay(base, remote responses.Service) responses.Service {
	if remote.Title != "" {
		base.Title = remote.Title
	}
	if remote.Subtitle != "" {
		base.Subtitle = remote.Subtitle
	}
	if remote.Description != "" {
		base.Description = remote.Description
	}
	if len(remote.Features) > 0 {
		base.Features = remote.Features
	}
	if remote.Duration != "" {
		base.Duration = remote.Duration
	}
	if remote.Badge != "" {
		base.Badge = remote.Badge
	}
	base.Available = remote.Available
	return base
}
