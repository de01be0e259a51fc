package controllers

import (
	"context"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockTokenProvider struct {
	mock.Mock
}

func (m *MockTokenProvider) GetToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTokenProvider) SetToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenProvider) ClearToken(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPageContent struct {
	mock.Mock
}

func (m *MockPageContent) Page(name string) (*responses.Page, error) {
	args := m.Called(name)
	page, _ := args.Get(0).(*responses.Page)
	return page, args.Error(1)
}

type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) ListServices(ctx context.Context) []responses.Service {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]responses.Service)
	return services
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) SubmitAppointment(ctx context.Context, request *requests.AppointmentRequest) forms.State {
	args := m.Called(ctx, request)
	return args.Get(0).(forms.State)
}

type MockContactUsecase struct {
	mock.Mock
}

func (m *MockContactUsecase) SendMessage(ctx context.Context, request *requests.ContactMessage) forms.State {
	args := m.Called(ctx, request)
	return args.Get(0).(forms.State)
}

type MockAccountUsecase struct {
	mock.Mock
}

func (m *MockAccountUsecase) IsLoggedIn(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockAccountUsecase) Login(ctx context.Context, request *requests.LoginRequest) forms.State {
	args := m.Called(ctx, request)
	return args.Get(0).(forms.State)
}

func (m *MockAccountUsecase) Register(ctx context.Context, request *requests.RegisterRequest) forms.State {
	args := m.Called(ctx, request)
	return args.Get(0).(forms.State)
}

func (m *MockAccountUsecase) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUsecase) GetProfile(ctx context.Context) (*responses.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*responses.User)
	return user, args.Error(1)
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, request *requests.ProfileUpdate) forms.State {
	args := m.Called(ctx, request)
	return args.Get(0).(forms.State)
}

func (m *MockAccountUsecase) ListAppointments(ctx context.Context) ([]responses.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAccountUsecase) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAccountUsecase) RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) forms.State {
	args := m.Called(ctx, appointmentID, request)
	return args.Get(0).(forms.State)
}

func (m *MockAccountUsecase) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointmentRequest) forms.State {
	args := m.Called(ctx, appointmentID, request)
	return args.Get(0).(forms.State)
}

type MockHealthClient struct {
	mock.Mock
}

func (m *MockHealthClient) HealthCheck(ctx context.Context) (*responses.Health, error) {
	args := m.Called(ctx)
	health, _ := args.Get(0).(*responses.Health)
	return health, args.Error(1)
}
