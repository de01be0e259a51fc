package controllers

import (
	"net/http"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/responses"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

type HealthController struct {
	Log          *zap.Logger
	HealthClient contracts.HealthClient
}

func NewHealthController(logger *zap.Logger, healthClient contracts.HealthClient) *HealthController {
	return &HealthController{
		Log:          logger,
		HealthClient: healthClient,
	}
}

// Healthz reports the website as up and probes the backend once.
func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	health, err := ctrl.HealthClient.HealthCheck(r.Context())
	if err != nil {
		ctrl.Log.Error("HealthController.Healthz backend unreachable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBackendHealthCheck(err))
		return
	}

	check := responses.HealthCheck{
		Website: constvars.ResponseSuccess,
		Backend: constvars.ResponseSuccess,
	}
	if health != nil {
		if health.Status != "" {
			check.Backend = health.Status
		}
		check.Detail = health.Timestamp
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, check)
}
