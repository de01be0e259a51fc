package controllers

import (
	"net/http"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/delivery/http/views"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

type PageController struct {
	*Presenter
	Content contracts.PageContent
	Catalog contracts.CatalogUsecase
}

func NewPageController(presenter *Presenter, content contracts.PageContent, catalog contracts.CatalogUsecase) *PageController {
	return &PageController{
		Presenter: presenter,
		Content:   content,
		Catalog:   catalog,
	}
}

func (ctrl *PageController) Home(w http.ResponseWriter, r *http.Request) {
	ctrl.renderContent(w, r, constvars.PageHome)
}

func (ctrl *PageController) About(w http.ResponseWriter, r *http.Request) {
	ctrl.renderContent(w, r, constvars.PageAbout)
}

func (ctrl *PageController) Privacy(w http.ResponseWriter, r *http.Request) {
	ctrl.renderContent(w, r, constvars.PagePrivacy)
}

func (ctrl *PageController) Terms(w http.ResponseWriter, r *http.Request) {
	ctrl.renderContent(w, r, constvars.PageTerms)
}

func (ctrl *PageController) Services(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	page, err := ctrl.Content.Page(constvars.PageServices)
	if err != nil {
		ctrl.Log.Error("PageController.Services error loading page content",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.RenderError(w, r, err)
		return
	}

	services := ctrl.Catalog.ListServices(r.Context())
	if ctrl.Abandoned(r) {
		return
	}

	ctrl.Render(w, r, constvars.StatusOK, views.TemplateServices, page.Title, nil, views.ServicesPage{
		Page:     page,
		Services: services,
	})
}

func (ctrl *PageController) renderContent(w http.ResponseWriter, r *http.Request, name string) {
	page, err := ctrl.Content.Page(name)
	if err != nil {
		ctrl.Log.Error("PageController.renderContent error loading page content",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingPageKey, name),
			zap.Error(err),
		)
		ctrl.RenderError(w, r, err)
		return
	}
	ctrl.Render(w, r, constvars.StatusOK, views.TemplatePage, page.Title, nil, views.ContentPage{Page: page})
}
