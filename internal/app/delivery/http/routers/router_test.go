package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"shrm-web/internal/app/config"
	"shrm-web/internal/app/delivery/http/controllers"
	"shrm-web/internal/app/delivery/http/middlewares"
	"shrm-web/internal/app/delivery/http/views"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/app/services/shared/metrics"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/dto/responses"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

type MockHealthClient struct {
	mock.Mock
}

func (m *MockHealthClient) HealthCheck(ctx context.Context) (*responses.Health, error) {
	args := m.Called(ctx)
	health, _ := args.Get(0).(*responses.Health)
	return health, args.Error(1)
}

type stubContent struct{}

func (stubContent) Page(name string) (*responses.Page, error) {
	return &responses.Page{Name: name, Title: "Page " + name}, nil
}

type stubCatalog struct{}

func (stubCatalog) ListServices(ctx context.Context) []responses.Service {
	return nil
}

type stubForms struct{}

func (stubForms) SubmitAppointment(ctx context.Context, request *requests.AppointmentRequest) forms.State {
	return forms.State{Phase: forms.Succeeded, Message: constvars.AppointmentSubmittedDefaultMessage}
}

func (stubForms) SendMessage(ctx context.Context, request *requests.ContactMessage) forms.State {
	return forms.State{Phase: forms.Succeeded, Message: constvars.ContactSentDefaultMessage}
}

type stubAccount struct{}

func (stubAccount) IsLoggedIn(ctx context.Context) bool { return false }
func (stubAccount) Logout(ctx context.Context) error    { return nil }

func (stubAccount) Login(ctx context.Context, request *requests.LoginRequest) forms.State {
	return forms.State{Phase: forms.Succeeded}
}

func (stubAccount) Register(ctx context.Context, request *requests.RegisterRequest) forms.State {
	return forms.State{Phase: forms.Succeeded}
}

func (stubAccount) GetProfile(ctx context.Context) (*responses.User, error) {
	return &responses.User{}, nil
}

func (stubAccount) UpdateProfile(ctx context.Context, request *requests.ProfileUpdate) forms.State {
	return forms.State{Phase: forms.Succeeded}
}

func (stubAccount) ListAppointments(ctx context.Context) ([]responses.Appointment, error) {
	return nil, nil
}

func (stubAccount) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	return &responses.Appointment{ID: appointmentID}, nil
}

func (stubAccount) RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) forms.State {
	return forms.State{Phase: forms.Succeeded}
}

func (stubAccount) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointmentRequest) forms.State {
	return forms.State{Phase: forms.Succeeded}
}

func newTestRouter(t *testing.T, token string) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	renderer, err := views.NewRenderer(logger)
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests:                100,
			MaxTimeRequestsPerSeconds:  60,
			RequestBodyLimitInMegabyte: 1,
			FormSubmissionsPerMinute:   5,
			FormBlockTimeInMinutes:     5,
		},
		Session: config.Session{CookieName: "shrm_session", TTLInHours: 24},
		Metrics: config.Metrics{Enabled: true, Namespace: "shrm"},
	}
	registry := prometheus.NewRegistry()
	websiteMetrics := metrics.NewWebsiteMetrics(registry, internalConfig.Metrics.Namespace)

	tokens := new(MockTokenProvider)
	tokens.On("GetToken", mock.Anything).Return(token, nil)
	healthClient := new(MockHealthClient)
	healthClient.On("HealthCheck", mock.Anything).Return(&responses.Health{Status: "ok"}, nil)

	presenter := controllers.NewPresenter(logger, renderer, tokens)
	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		registry,
		&middlewares.Middlewares{
			Log:            logger,
			InternalConfig: internalConfig,
			Tokens:         tokens,
			Metrics:        websiteMetrics,
			Views:          renderer,
		},
		controllers.NewPageController(presenter, stubContent{}, stubCatalog{}),
		controllers.NewAppointmentController(presenter, stubForms{}),
		controllers.NewContactController(presenter, stubForms{}),
		controllers.NewAccountController(presenter, stubAccount{}),
		controllers.NewHealthController(logger, healthClient),
	)
	return router
}

func TestSetupRoutes(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		method     string
		target     string
		wantStatus int
		wantHeader string
	}{
		{"Home Page", "", http.MethodGet, constvars.RouteHome, http.StatusOK, ""},
		{"Privacy Page", "", http.MethodGet, constvars.RoutePrivacy, http.StatusOK, ""},
		{"Booking Form", "", http.MethodGet, constvars.RouteAppointments, http.StatusOK, ""},
		{"Contact Form", "", http.MethodGet, constvars.RouteContact, http.StatusOK, ""},
		{"Profile Requires Login", "", http.MethodGet, constvars.RouteProfile, http.StatusSeeOther, constvars.RouteLogin},
		{"Profile With Token", "token", http.MethodGet, constvars.RouteProfile, http.StatusOK, ""},
		{"Appointment Detail With Token", "token", http.MethodGet, "/my/appointments/a1", http.StatusOK, ""},
		{"Logout Redirects", "token", http.MethodPost, constvars.RouteLogout, http.StatusSeeOther, "/?notice=logout"},
		{"Health Check", "", http.MethodGet, constvars.RouteHealthz, http.StatusOK, ""},
		{"Metrics", "", http.MethodGet, constvars.RouteMetrics, http.StatusOK, ""},
		{"Unknown Page", "", http.MethodGet, "/does-not-exist", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
			if tt.wantHeader != "" {
				assert.Equal(t, tt.wantHeader, rec.Header().Get("Location"))
			}
		})
	}
}

func TestSetupRoutes_RecordsRoutePattern(t *testing.T) {
	router := newTestRouter(t, "token")
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/my/appointments/a1", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constvars.RouteMetrics, nil))

	assert.Contains(t, rec.Body.String(), `route="/my/appointments/{appointment_id}"`)
}
