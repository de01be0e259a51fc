package controllers

import (
	"net/http"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/delivery/http/views"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

const appointmentsTitle = "Book an Appointment"

type AppointmentController struct {
	*Presenter
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(presenter *Presenter, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Presenter:          presenter,
		AppointmentUsecase: appointmentUsecase,
	}
}

// Show renders an empty booking form. A known serviceType query value is
// preselected so service cards can link straight to the form.
func (ctrl *AppointmentController) Show(w http.ResponseWriter, r *http.Request) {
	form := utils.NewAppointmentRequest()
	serviceType := r.URL.Query().Get(constvars.QueryParamServiceType)
	for _, option := range constvars.ServiceTypeOptions {
		if option.Value == serviceType {
			form.ServiceType = serviceType
		}
	}

	ctrl.Render(w, r, constvars.StatusOK, views.TemplateAppointments, appointmentsTitle, nil, views.AppointmentForm{Form: form})
}

func (ctrl *AppointmentController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("AppointmentController.Submit error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.RenderError(w, r, exceptions.ErrCannotParseForm(err))
		return
	}

	form := utils.BuildAppointmentRequest(r)
	state := ctrl.AppointmentUsecase.SubmitAppointment(r.Context(), form)
	if ctrl.Abandoned(r) {
		return
	}
	if ctrl.RedirectToLogin(w, r, state.Err) {
		return
	}

	if state.IsSucceeded() {
		form = utils.NewAppointmentRequest()
	}

	ctrl.Log.Info("AppointmentController.Submit completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhaseKey, state.Phase.String()),
	)
	ctrl.Render(w, r, formStatus(state.IsFailed()), views.TemplateAppointments, appointmentsTitle, views.FlashFromState(state), views.AppointmentForm{
		Form:  form,
		State: state,
	})
}
