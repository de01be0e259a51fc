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

// Presenter renders pages for every controller and fills in the layout data.
type Presenter struct {
	Log    *zap.Logger
	Views  *views.Renderer
	Tokens contracts.TokenProvider
}

func NewPresenter(logger *zap.Logger, renderer *views.Renderer, tokens contracts.TokenProvider) *Presenter {
	return &Presenter{
		Log:    logger,
		Views:  renderer,
		Tokens: tokens,
	}
}

// Render shows a page. Without an explicit flash, a known notice from the
// query string is shown instead.
func (p *Presenter) Render(w http.ResponseWriter, r *http.Request, statusCode int, name, title string, flash *views.Flash, data any) {
	if flash == nil {
		if notice, ok := constvars.Notices[r.URL.Query().Get(constvars.QueryParamNotice)]; ok {
			flash = views.SuccessFlash(notice)
		}
	}

	pageData := views.PageData{
		Title:       title,
		CurrentPath: r.URL.Path,
		LoggedIn:    p.isLoggedIn(r),
		RequestID:   utils.GetRequestID(r.Context()),
		Flash:       flash,
		Data:        data,
	}

	if err := p.Views.Render(w, statusCode, name, pageData); err != nil {
		p.Views.RenderError(w, r, err)
	}
}

func (p *Presenter) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	p.Views.RenderError(w, r, err)
}

func (p *Presenter) NotFound(w http.ResponseWriter, r *http.Request) {
	p.Views.RenderError(w, r, exceptions.ErrPageNotFound(nil))
}

// RedirectToLogin handles an expired or rejected token. It reports whether
// err asked for the redirect.
func (p *Presenter) RedirectToLogin(w http.ResponseWriter, r *http.Request, err error) bool {
	apiErr, ok := exceptions.AsAPIError(err)
	if !ok || apiErr.Kind != exceptions.KindAuth {
		return false
	}
	p.Log.Info("Presenter.RedirectToLogin backend rejected the visitor token",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)
	http.Redirect(w, r, apiErr.RedirectTo, http.StatusSeeOther)
	return true
}

// Abandoned reports whether the visitor went away while the backend call was
// in flight, in which case nothing is rendered.
func (p *Presenter) Abandoned(r *http.Request) bool {
	if r.Context().Err() == nil {
		return false
	}
	p.Log.Info("Presenter.Abandoned request cancelled before response",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.Error(r.Context().Err()),
	)
	return true
}

func (p *Presenter) isLoggedIn(r *http.Request) bool {
	if p.Tokens == nil {
		return false
	}
	token, err := p.Tokens.GetToken(r.Context())
	return err == nil && token != ""
}

// formStatus is 422 for a rejected form and 200 otherwise.
func formStatus(failed bool) int {
	if failed {
		return constvars.StatusUnprocessableEntity
	}
	return constvars.StatusOK
}
