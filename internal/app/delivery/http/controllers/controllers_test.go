package controllers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"shrm-web/internal/app/delivery/http/views"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/dto/responses"
	"shrm-web/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPresenter(t *testing.T, loggedIn bool) *Presenter {
	t.Helper()
	renderer, err := views.NewRenderer(zap.NewNop())
	require.NoError(t, err)

	tokens := new(MockTokenProvider)
	token := ""
	if loggedIn {
		token = "token"
	}
	tokens.On("GetToken", mock.Anything).Return(token, nil)

	return NewPresenter(zap.NewNop(), renderer, tokens)
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(constvars.HeaderContentType, "application/x-www-form-urlencoded")
	return req
}

func withAppointmentID(req *http.Request, appointmentID string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(constvars.URLParamAppointmentID, appointmentID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeContext))
}

func TestPageController(t *testing.T) {
	t.Run("Renders Content Page", func(t *testing.T) {
		content := new(MockPageContent)
		content.On("Page", constvars.PageAbout).Return(&responses.Page{Name: constvars.PageAbout, Title: "About Us", Body: template.HTML("<p>Our story</p>")}, nil)
		ctrl := NewPageController(newTestPresenter(t, false), content, new(MockCatalogUsecase))
		rec := httptest.NewRecorder()

		ctrl.About(rec, httptest.NewRequest(http.MethodGet, constvars.RouteAbout, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<p>Our story</p>")
		assert.Contains(t, rec.Body.String(), "About Us")
	})

	t.Run("Shows Notice From Query", func(t *testing.T) {
		content := new(MockPageContent)
		content.On("Page", constvars.PageHome).Return(&responses.Page{Name: constvars.PageHome, Title: "Home"}, nil)
		ctrl := NewPageController(newTestPresenter(t, false), content, new(MockCatalogUsecase))
		rec := httptest.NewRecorder()

		ctrl.Home(rec, httptest.NewRequest(http.MethodGet, "/?notice=logout", nil))

		assert.Contains(t, rec.Body.String(), constvars.LogoutSuccessMessage)
	})

	t.Run("Ignores Unknown Notice", func(t *testing.T) {
		content := new(MockPageContent)
		content.On("Page", constvars.PageHome).Return(&responses.Page{Name: constvars.PageHome, Title: "Home"}, nil)
		ctrl := NewPageController(newTestPresenter(t, false), content, new(MockCatalogUsecase))
		rec := httptest.NewRecorder()

		ctrl.Home(rec, httptest.NewRequest(http.MethodGet, "/?notice=<script>", nil))

		assert.NotContains(t, rec.Body.String(), `class="flash flash-success"`)
	})

	t.Run("Missing Content Renders Error Page", func(t *testing.T) {
		content := new(MockPageContent)
		content.On("Page", constvars.PageTerms).Return(nil, exceptions.ErrPageNotFound(errors.New("missing")))
		ctrl := NewPageController(newTestPresenter(t, false), content, new(MockCatalogUsecase))
		rec := httptest.NewRecorder()

		ctrl.Terms(rec, httptest.NewRequest(http.MethodGet, constvars.RouteTerms, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Services Lists Catalog", func(t *testing.T) {
		content := new(MockPageContent)
		content.On("Page", constvars.PageServices).Return(&responses.Page{Name: constvars.PageServices, Title: "Our Services"}, nil)
		catalog := new(MockCatalogUsecase)
		catalog.On("ListServices", mock.Anything).Return([]responses.Service{{Slug: constvars.ServiceGroupTherapy, Title: "Group Therapy", Available: true}})
		ctrl := NewPageController(newTestPresenter(t, false), content, catalog)
		rec := httptest.NewRecorder()

		ctrl.Services(rec, httptest.NewRequest(http.MethodGet, constvars.RouteServices, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Group Therapy")
		catalog.AssertExpectations(t)
	})
}

func TestAppointmentController(t *testing.T) {
	validForm := url.Values{
		"firstName":           {"Jane"},
		"lastName":            {"Doe"},
		"email":               {"jane@example.com"},
		"phone":               {"5551234567"},
		"serviceType":         {constvars.ServiceIndividualCounseling},
		"preferredDate":       {"2099-01-01"},
		"preferredTime":       {"10:00"},
		"reasonForCounseling": {"anxiety"},
	}

	t.Run("Show Preselects Known Service", func(t *testing.T) {
		ctrl := NewAppointmentController(newTestPresenter(t, false), new(MockAppointmentUsecase))
		rec := httptest.NewRecorder()

		ctrl.Show(rec, httptest.NewRequest(http.MethodGet, "/appointments?serviceType="+constvars.ServiceGroupTherapy, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="`+constvars.ServiceGroupTherapy+`" selected`)
	})

	t.Run("Show Ignores Unknown Service", func(t *testing.T) {
		ctrl := NewAppointmentController(newTestPresenter(t, false), new(MockAppointmentUsecase))
		rec := httptest.NewRecorder()

		ctrl.Show(rec, httptest.NewRequest(http.MethodGet, "/appointments?serviceType=astrology", nil))

		assert.NotContains(t, rec.Body.String(), "selected>")
	})

	t.Run("Successful Submission Clears Form", func(t *testing.T) {
		usecase := new(MockAppointmentUsecase)
		usecase.On("SubmitAppointment", mock.Anything, mock.MatchedBy(func(request *requests.AppointmentRequest) bool {
			return request.FirstName == "Jane" && request.SessionType == constvars.SessionTypeInPerson
		})).Return(forms.State{Phase: forms.Succeeded, Message: "Request received"})
		ctrl := NewAppointmentController(newTestPresenter(t, false), usecase)
		rec := httptest.NewRecorder()

		ctrl.Submit(rec, postForm(constvars.RouteAppointments, validForm))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Request received")
		assert.NotContains(t, rec.Body.String(), `value="Jane"`)
		usecase.AssertExpectations(t)
	})

	t.Run("Failed Submission Keeps Values", func(t *testing.T) {
		usecase := new(MockAppointmentUsecase)
		usecase.On("SubmitAppointment", mock.Anything, mock.Anything).Return(forms.State{
			Phase:   forms.Failed,
			Message: "Please enter a valid email address",
			Err:     exceptions.ErrFieldValidation("email", "Please enter a valid email address"),
		})
		ctrl := NewAppointmentController(newTestPresenter(t, false), usecase)
		rec := httptest.NewRecorder()

		ctrl.Submit(rec, postForm(constvars.RouteAppointments, validForm))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please enter a valid email address")
		assert.Contains(t, rec.Body.String(), `value="Jane"`)
	})

	t.Run("Unauthorized Redirects To Login", func(t *testing.T) {
		usecase := new(MockAppointmentUsecase)
		usecase.On("SubmitAppointment", mock.Anything, mock.Anything).Return(forms.State{
			Phase: forms.Failed,
			Err:   exceptions.ErrAPIResponse(constvars.MethodPost, constvars.ResourceAppointments, http.StatusUnauthorized, ""),
		})
		ctrl := NewAppointmentController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.Submit(rec, postForm(constvars.RouteAppointments, validForm))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.RouteLogin, rec.Header().Get("Location"))
	})

	t.Run("Cancelled Request Renders Nothing", func(t *testing.T) {
		usecase := new(MockAppointmentUsecase)
		usecase.On("SubmitAppointment", mock.Anything, mock.Anything).Return(forms.State{Phase: forms.Failed, Err: context.Canceled})
		ctrl := NewAppointmentController(newTestPresenter(t, false), usecase)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		rec := httptest.NewRecorder()

		ctrl.Submit(rec, postForm(constvars.RouteAppointments, validForm).WithContext(ctx))

		assert.Empty(t, rec.Body.String())
	})
}

func TestContactController(t *testing.T) {
	form := url.Values{
		"name":    {"Jane"},
		"email":   {"jane@example.com"},
		"subject": {"general"},
		"message": {"I would like to know more"},
	}

	t.Run("Success", func(t *testing.T) {
		usecase := new(MockContactUsecase)
		usecase.On("SendMessage", mock.Anything, mock.Anything).Return(forms.State{Phase: forms.Succeeded, Message: constvars.ContactSentDefaultMessage})
		ctrl := NewContactController(newTestPresenter(t, false), usecase)
		rec := httptest.NewRecorder()

		ctrl.Submit(rec, postForm(constvars.RouteContact, form))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `class="flash flash-success"`)
		assert.NotContains(t, rec.Body.String(), "I would like to know more")
	})

	t.Run("Server Failure", func(t *testing.T) {
		usecase := new(MockContactUsecase)
		usecase.On("SendMessage", mock.Anything, mock.Anything).Return(forms.State{Phase: forms.Failed, Message: "Mailbox is full"})
		ctrl := NewContactController(newTestPresenter(t, false), usecase)
		rec := httptest.NewRecorder()

		ctrl.Submit(rec, postForm(constvars.RouteContact, form))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Mailbox is full")
		assert.Contains(t, rec.Body.String(), "I would like to know more")
	})

	t.Run("Unauthorized Redirects To Login", func(t *testing.T) {
		usecase := new(MockContactUsecase)
		usecase.On("SendMessage", mock.Anything, mock.Anything).Return(forms.State{
			Phase: forms.Failed,
			Err:   exceptions.ErrAPIResponse(constvars.MethodPost, constvars.ResourceContact, http.StatusUnauthorized, ""),
		})
		ctrl := NewContactController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.Submit(rec, postForm(constvars.RouteContact, form))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.RouteLogin, rec.Header().Get("Location"))
	})
}

func TestAccountController_Login(t *testing.T) {
	t.Run("Success Redirects With Notice", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("Login", mock.Anything, &requests.LoginRequest{Email: "jane@example.com", Password: "secret"}).Return(forms.State{Phase: forms.Succeeded})
		ctrl := NewAccountController(newTestPresenter(t, false), usecase)
		rec := httptest.NewRecorder()

		ctrl.Login(rec, postForm(constvars.RouteLogin, url.Values{"email": {"jane@example.com"}, "password": {"secret"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/my/appointments?notice=login", rec.Header().Get("Location"))
	})

	t.Run("Failure Drops Password", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("Login", mock.Anything, mock.Anything).Return(forms.State{Phase: forms.Failed, Message: "Invalid credentials"})
		ctrl := NewAccountController(newTestPresenter(t, false), usecase)
		rec := httptest.NewRecorder()

		ctrl.Login(rec, postForm(constvars.RouteLogin, url.Values{"email": {"jane@example.com"}, "password": {"hunter22"}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
		assert.NotContains(t, rec.Body.String(), "hunter22")
	})
}

func TestAccountController_Register(t *testing.T) {
	values := url.Values{"firstName": {"Jane"}, "lastName": {"Doe"}, "email": {"jane@example.com"}, "password": {"password123"}}

	t.Run("Token Returned Redirects", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("Register", mock.Anything, mock.Anything).Return(forms.State{Phase: forms.Succeeded, Message: constvars.RegisterSuccessMessage})
		usecase.On("IsLoggedIn", mock.Anything).Return(true)
		ctrl := NewAccountController(newTestPresenter(t, false), usecase)
		rec := httptest.NewRecorder()

		ctrl.Register(rec, postForm(constvars.RouteRegister, values))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/my/appointments?notice=register", rec.Header().Get("Location"))
	})

	t.Run("No Token Shows Login", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("Register", mock.Anything, mock.Anything).Return(forms.State{Phase: forms.Succeeded, Message: constvars.RegisterSuccessMessage})
		usecase.On("IsLoggedIn", mock.Anything).Return(false)
		ctrl := NewAccountController(newTestPresenter(t, false), usecase)
		rec := httptest.NewRecorder()

		ctrl.Register(rec, postForm(constvars.RouteRegister, values))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/login"`)
		assert.Contains(t, rec.Body.String(), `value="jane@example.com"`)
	})
}

func TestAccountController_Logout(t *testing.T) {
	t.Run("Redirects Home", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("Logout", mock.Anything).Return(nil)
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.Logout(rec, httptest.NewRequest(http.MethodPost, constvars.RouteLogout, nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?notice=logout", rec.Header().Get("Location"))
	})

	t.Run("Store Failure", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("Logout", mock.Anything).Return(errors.New("redis down"))
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.Logout(rec, httptest.NewRequest(http.MethodPost, constvars.RouteLogout, nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAccountController_Profile(t *testing.T) {
	unauthorized := exceptions.ErrAPIResponse(constvars.MethodGet, constvars.ResourceUserProfile, http.StatusUnauthorized, "")

	t.Run("Renders Profile", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("GetProfile", mock.Anything).Return(&responses.User{FirstName: "Jane", LastName: "Doe"}, nil)
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.Profile(rec, httptest.NewRequest(http.MethodGet, constvars.RouteProfile, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Jane Doe")
	})

	t.Run("Expired Token Redirects To Login", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("GetProfile", mock.Anything).Return(nil, unauthorized)
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.Profile(rec, httptest.NewRequest(http.MethodGet, constvars.RouteProfile, nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.RouteLogin, rec.Header().Get("Location"))
	})

	t.Run("Update Shows Flash", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("UpdateProfile", mock.Anything, mock.Anything).Return(forms.State{Phase: forms.Succeeded, Message: constvars.UpdateProfileSuccessMessage})
		usecase.On("GetProfile", mock.Anything).Return(&responses.User{FirstName: "Janet", LastName: "Doe"}, nil)
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.UpdateProfile(rec, postForm(constvars.RouteProfile, url.Values{"firstName": {"Janet"}}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.UpdateProfileSuccessMessage)
		assert.Contains(t, rec.Body.String(), "Janet Doe")
	})
}

func TestAccountController_Appointments(t *testing.T) {
	appointment := &responses.Appointment{ID: "a1", ServiceType: constvars.ServiceFamilyCounseling, PreferredTime: "14:00", Status: "scheduled"}

	t.Run("Lists Appointments", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("ListAppointments", mock.Anything).Return([]responses.Appointment{*appointment}, nil)
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.MyAppointments(rec, httptest.NewRequest(http.MethodGet, "/my/appointments?notice=login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Family Counseling")
		assert.Contains(t, rec.Body.String(), constvars.LoginSuccessMessage)
	})

	t.Run("Backend Outage Shows Flash", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("ListAppointments", mock.Anything).Return(nil, exceptions.ErrAPIResponse(constvars.MethodGet, constvars.ResourceAppointments, http.StatusBadGateway, ""))
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.MyAppointments(rec, httptest.NewRequest(http.MethodGet, constvars.RouteMyAppointments, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.ErrClientServerError)
	})

	t.Run("Unknown Appointment Is Not Found", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("GetAppointment", mock.Anything, "missing").Return(nil, exceptions.ErrAPIResponse(constvars.MethodGet, constvars.ResourceAppointments+"/missing", http.StatusNotFound, ""))
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.AppointmentDetail(rec, withAppointmentID(httptest.NewRequest(http.MethodGet, "/my/appointments/missing", nil), "missing"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Reschedule Re-renders Detail", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("RescheduleAppointment", mock.Anything, "a1", mock.Anything).Return(forms.State{Phase: forms.Succeeded, Message: constvars.RescheduleAppointmentSuccessMessage})
		usecase.On("GetAppointment", mock.Anything, "a1").Return(appointment, nil)
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		req := postForm("/my/appointments/a1/reschedule", url.Values{"preferredDate": {"2099-02-01"}, "preferredTime": {"14:00"}})
		ctrl.RescheduleAppointment(rec, withAppointmentID(req, "a1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.RescheduleAppointmentSuccessMessage)
		assert.Contains(t, rec.Body.String(), "2:00 PM")
		usecase.AssertExpectations(t)
	})

	t.Run("Cancel Failure Is Unprocessable", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("CancelAppointment", mock.Anything, "a1", mock.Anything).Return(forms.State{Phase: forms.Failed, Message: "Too late to cancel"})
		usecase.On("GetAppointment", mock.Anything, "a1").Return(appointment, nil)
		ctrl := NewAccountController(newTestPresenter(t, true), usecase)
		rec := httptest.NewRecorder()

		ctrl.CancelAppointment(rec, withAppointmentID(postForm("/my/appointments/a1/cancel", url.Values{}), "a1"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too late to cancel")
	})
}

func TestHealthController(t *testing.T) {
	t.Run("Backend Up", func(t *testing.T) {
		client := new(MockHealthClient)
		client.On("HealthCheck", mock.Anything).Return(&responses.Health{Status: "ok"}, nil)
		ctrl := NewHealthController(zap.NewNop(), client)
		rec := httptest.NewRecorder()

		ctrl.Healthz(rec, httptest.NewRequest(http.MethodGet, constvars.RouteHealthz, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Success bool                  `json:"success"`
			Data    responses.HealthCheck `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "ok", body.Data.Backend)
	})

	t.Run("Backend Down", func(t *testing.T) {
		client := new(MockHealthClient)
		client.On("HealthCheck", mock.Anything).Return(nil, exceptions.ErrAPINetwork(errors.New("refused"), constvars.MethodGet, constvars.ResourceHealth, false))
		ctrl := NewHealthController(zap.NewNop(), client)
		rec := httptest.NewRecorder()

		ctrl.Healthz(rec, httptest.NewRequest(http.MethodGet, constvars.RouteHealthz, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
