package controllers

import (
	"net/http"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/delivery/http/views"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

const contactTitle = "Contact Us"

type ContactController struct {
	*Presenter
	ContactUsecase contracts.ContactUsecase
}

func NewContactController(presenter *Presenter, contactUsecase contracts.ContactUsecase) *ContactController {
	return &ContactController{
		Presenter:      presenter,
		ContactUsecase: contactUsecase,
	}
}

func (ctrl *ContactController) Show(w http.ResponseWriter, r *http.Request) {
	ctrl.Render(w, r, constvars.StatusOK, views.TemplateContact, contactTitle, nil, views.ContactForm{Form: &requests.ContactMessage{}})
}

func (ctrl *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ContactController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("ContactController.Submit error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.RenderError(w, r, exceptions.ErrCannotParseForm(err))
		return
	}

	form := utils.BuildContactMessage(r)
	state := ctrl.ContactUsecase.SendMessage(r.Context(), form)
	if ctrl.Abandoned(r) {
		return
	}
	if ctrl.RedirectToLogin(w, r, state.Err) {
		return
	}

	if state.IsSucceeded() {
		form = &requests.ContactMessage{}
	}

	ctrl.Log.Info("ContactController.Submit completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhaseKey, state.Phase.String()),
	)
	ctrl.Render(w, r, formStatus(state.IsFailed()), views.TemplateContact, contactTitle, views.FlashFromState(state), views.ContactForm{
		Form:  form,
		State: state,
	})
}
