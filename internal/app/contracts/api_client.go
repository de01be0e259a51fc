package contracts

import (
	"context"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/dto/responses"
)

type HealthClient interface {
	HealthCheck(ctx context.Context) (*responses.Health, error)
}

type AuthClient interface {
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.Auth, error)
	Register(ctx context.Context, request *requests.RegisterRequest) (*responses.Auth, error)
}

type AppointmentClient interface {
	CreateAppointment(ctx context.Context, request *requests.AppointmentRequest) (*responses.AppointmentResult, error)
	GetAppointments(ctx context.Context) (*responses.AppointmentList, error)
	GetAppointment(ctx context.Context, appointmentID string) (*responses.AppointmentResult, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) (*responses.AppointmentResult, error)
	CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointmentRequest) (*responses.AppointmentResult, error)
}

type ContactClient interface {
	SendContactMessage(ctx context.Context, request *requests.ContactMessage) (*responses.ContactResult, error)
}

type ServiceClient interface {
	GetServices(ctx context.Context) (*responses.ServiceList, error)
}

type ProfileClient interface {
	GetProfile(ctx context.Context) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, request *requests.ProfileUpdate) (*responses.Profile, error)
}

// APIClient is the full surface of the counseling backend API.
type APIClient interface {
	HealthClient
	AuthClient
	AppointmentClient
	ContactClient
	ServiceClient
	ProfileClient
}
