package middlewares

import (
	"shrm-web/internal/app/config"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/delivery/http/views"
	"shrm-web/internal/app/services/shared/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Tokens         contracts.TokenProvider
	Metrics        *metrics.WebsiteMetrics
	Views          *views.Renderer
}
