package contracts

import (
	"context"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/dto/responses"
)

// AccountUsecase covers the pages of a logged in visitor. Methods returning
// an error surface exceptions.APIError so callers can redirect on 401.
type AccountUsecase interface {
	IsLoggedIn(ctx context.Context) bool
	Login(ctx context.Context, request *requests.LoginRequest) forms.State
	Register(ctx context.Context, request *requests.RegisterRequest) forms.State
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*responses.User, error)
	UpdateProfile(ctx context.Context, request *requests.ProfileUpdate) forms.State
	ListAppointments(ctx context.Context) ([]responses.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) forms.State
	CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointmentRequest) forms.State
}
