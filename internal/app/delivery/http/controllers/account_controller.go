package controllers

import (
	"fmt"
	"net/http"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/delivery/http/views"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	loginTitle             = "Log In"
	registerTitle          = "Create an Account"
	profileTitle           = "My Profile"
	myAppointmentsTitle    = "My Appointments"
	appointmentDetailTitle = "Appointment Details"
)

type AccountController struct {
	*Presenter
	AccountUsecase contracts.AccountUsecase
}

func NewAccountController(presenter *Presenter, accountUsecase contracts.AccountUsecase) *AccountController {
	return &AccountController{
		Presenter:      presenter,
		AccountUsecase: accountUsecase,
	}
}

func (ctrl *AccountController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	ctrl.Render(w, r, constvars.StatusOK, views.TemplateLogin, loginTitle, nil, views.LoginForm{Form: &requests.LoginRequest{}})
}

func (ctrl *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	if !ctrl.parseForm(w, r, "AccountController.Login") {
		return
	}

	form := utils.BuildLoginRequest(r)
	state := ctrl.AccountUsecase.Login(r.Context(), form)
	if ctrl.Abandoned(r) {
		return
	}
	if state.IsSucceeded() {
		redirectWithNotice(w, r, constvars.RouteMyAppointments, constvars.FormLogin)
		return
	}

	form.Password = ""
	ctrl.Render(w, r, formStatus(state.IsFailed()), views.TemplateLogin, loginTitle, views.FlashFromState(state), views.LoginForm{
		Form:  form,
		State: state,
	})
}

func (ctrl *AccountController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	ctrl.Render(w, r, constvars.StatusOK, views.TemplateRegister, registerTitle, nil, views.RegisterForm{Form: &requests.RegisterRequest{}})
}

// Register signs the visitor in straight away when the backend returns a
// token. Otherwise the login page is shown with the success message.
func (ctrl *AccountController) Register(w http.ResponseWriter, r *http.Request) {
	if !ctrl.parseForm(w, r, "AccountController.Register") {
		return
	}

	form := utils.BuildRegisterRequest(r)
	state := ctrl.AccountUsecase.Register(r.Context(), form)
	if ctrl.Abandoned(r) {
		return
	}

	if state.IsSucceeded() {
		if ctrl.AccountUsecase.IsLoggedIn(r.Context()) {
			redirectWithNotice(w, r, constvars.RouteMyAppointments, constvars.FormRegister)
			return
		}
		ctrl.Render(w, r, constvars.StatusOK, views.TemplateLogin, loginTitle, views.FlashFromState(state), views.LoginForm{
			Form: &requests.LoginRequest{Email: form.Email},
		})
		return
	}

	form.Password = ""
	ctrl.Render(w, r, formStatus(state.IsFailed()), views.TemplateRegister, registerTitle, views.FlashFromState(state), views.RegisterForm{
		Form:  form,
		State: state,
	})
}

func (ctrl *AccountController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.AccountUsecase.Logout(r.Context()); err != nil {
		ctrl.RenderError(w, r, exceptions.ErrServerProcess(err))
		return
	}
	redirectWithNotice(w, r, constvars.RouteHome, constvars.NoticeLogout)
}

func (ctrl *AccountController) Profile(w http.ResponseWriter, r *http.Request) {
	ctrl.renderProfile(w, r, constvars.StatusOK, forms.State{})
}

func (ctrl *AccountController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if !ctrl.parseForm(w, r, "AccountController.UpdateProfile") {
		return
	}

	state := ctrl.AccountUsecase.UpdateProfile(r.Context(), utils.BuildProfileUpdate(r))
	if ctrl.Abandoned(r) {
		return
	}
	if ctrl.RedirectToLogin(w, r, state.Err) {
		return
	}
	ctrl.renderProfile(w, r, formStatus(state.IsFailed()), state)
}

func (ctrl *AccountController) renderProfile(w http.ResponseWriter, r *http.Request, statusCode int, state forms.State) {
	user, err := ctrl.AccountUsecase.GetProfile(r.Context())
	if ctrl.Abandoned(r) || ctrl.RedirectToLogin(w, r, err) {
		return
	}

	flash := views.FlashFromState(state)
	if err != nil {
		ctrl.Log.Error("AccountController.renderProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		if flash == nil {
			flash = views.ErrorFlash(forms.FailureMessage(err, constvars.ErrClientUnexpected))
		}
	}

	ctrl.Render(w, r, statusCode, views.TemplateProfile, profileTitle, flash, views.ProfilePage{
		User:  user,
		State: state,
	})
}

func (ctrl *AccountController) MyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := ctrl.AccountUsecase.ListAppointments(r.Context())
	if ctrl.Abandoned(r) || ctrl.RedirectToLogin(w, r, err) {
		return
	}

	var flash *views.Flash
	if err != nil {
		ctrl.Log.Error("AccountController.MyAppointments error listing appointments",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		flash = views.ErrorFlash(forms.FailureMessage(err, constvars.ErrClientUnexpected))
	}

	ctrl.Render(w, r, constvars.StatusOK, views.TemplateMyAppointments, myAppointmentsTitle, flash, views.MyAppointmentsPage{
		Appointments: appointments,
	})
}

func (ctrl *AccountController) AppointmentDetail(w http.ResponseWriter, r *http.Request) {
	ctrl.renderAppointment(w, r, constvars.StatusOK, forms.State{})
}

func (ctrl *AccountController) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	if !ctrl.parseForm(w, r, "AccountController.RescheduleAppointment") {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	state := ctrl.AccountUsecase.RescheduleAppointment(r.Context(), appointmentID, utils.BuildUpdateAppointmentRequest(r))
	if ctrl.Abandoned(r) || ctrl.RedirectToLogin(w, r, state.Err) {
		return
	}
	ctrl.renderAppointment(w, r, formStatus(state.IsFailed()), state)
}

func (ctrl *AccountController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	if !ctrl.parseForm(w, r, "AccountController.CancelAppointment") {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	state := ctrl.AccountUsecase.CancelAppointment(r.Context(), appointmentID, utils.BuildCancelAppointmentRequest(r))
	if ctrl.Abandoned(r) || ctrl.RedirectToLogin(w, r, state.Err) {
		return
	}
	ctrl.renderAppointment(w, r, formStatus(state.IsFailed()), state)
}

// renderAppointment reloads the appointment so a successful change shows the
// backend's view of it.
func (ctrl *AccountController) renderAppointment(w http.ResponseWriter, r *http.Request, statusCode int, state forms.State) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	appointment, err := ctrl.AccountUsecase.GetAppointment(r.Context(), appointmentID)
	if ctrl.Abandoned(r) || ctrl.RedirectToLogin(w, r, err) {
		return
	}

	flash := views.FlashFromState(state)
	if err != nil {
		ctrl.Log.Error("AccountController.renderAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		if apiErr, ok := exceptions.AsAPIError(err); ok && apiErr.Kind == exceptions.KindNotFound {
			ctrl.NotFound(w, r)
			return
		}
		if flash == nil {
			flash = views.ErrorFlash(forms.FailureMessage(err, constvars.ErrClientUnexpected))
		}
	}

	ctrl.Render(w, r, statusCode, views.TemplateAppointmentDetail, appointmentDetailTitle, flash, views.AppointmentDetailPage{
		Appointment: appointment,
		State:       state,
	})
}

func (ctrl *AccountController) parseForm(w http.ResponseWriter, r *http.Request, operation string) bool {
	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error(operation+" error parsing form",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		ctrl.RenderError(w, r, exceptions.ErrCannotParseForm(err))
		return false
	}
	return true
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	http.Redirect(w, r, fmt.Sprintf("%s?%s=%s", path, constvars.QueryParamNotice, notice), http.StatusSeeOther)
}
