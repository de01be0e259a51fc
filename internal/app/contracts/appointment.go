package contracts

import (
	"context"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/pkg/dto/requests"
)

type AppointmentUsecase interface {
	SubmitAppointment(ctx context.Context, request *requests.AppointmentRequest) forms.State
}
