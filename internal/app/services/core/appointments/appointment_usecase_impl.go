package appointments

import (
	"context"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/app/services/shared/metrics"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentClient contracts.AppointmentClient
	Publisher         contracts.SubmissionPublisher
	Submitter         *forms.Submitter
	Log               *zap.Logger
}

func NewAppointmentUsecase(
	appointmentClient contracts.AppointmentClient,
	publisher contracts.SubmissionPublisher,
	websiteMetrics *metrics.WebsiteMetrics,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentClient: appointmentClient,
		Publisher:         publisher,
		Submitter: &forms.Submitter{
			Form:     constvars.FormAppointment,
			Success:  constvars.AppointmentSubmittedDefaultMessage,
			Fallback: constvars.ErrClientUnexpected,
			Metrics:  websiteMetrics,
			Log:      logger,
		},
		Log: logger,
	}
}

func (uc *appointmentUsecase) SubmitAppointment(ctx context.Context, request *requests.AppointmentRequest) forms.State {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.SubmitAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeAppointmentRequest(request)

	return uc.Submitter.Submit(ctx,
		func() error {
			return ValidateAppointmentRequest(request)
		},
		func(ctx context.Context) (string, error) {
			result, err := uc.AppointmentClient.CreateAppointment(ctx, request)
			if err != nil {
				uc.Log.Error("appointmentUsecase.SubmitAppointment error creating appointment",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return "", err
			}

			uc.publishSubmission(ctx, request)

			if result == nil {
				return "", nil
			}
			if result.Appointment != nil {
				uc.Log.Info("appointmentUsecase.SubmitAppointment succeeded",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingAppointmentIDKey, result.Appointment.ID),
				)
			}
			return result.ServerMessage(), nil
		},
	)
}

func (uc *appointmentUsecase) publishSubmission(ctx context.Context, request *requests.AppointmentRequest) {
	event := &requests.SubmissionEvent{
		Form:        constvars.FormAppointment,
		RequestID:   utils.GetRequestID(ctx),
		Email:       request.Email,
		Subject:     request.ServiceType,
		IsEmergency: request.IsEmergency,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.Publisher.PublishSubmission(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase.publishSubmission error publishing submission event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.Error(err),
		)
	}
}
