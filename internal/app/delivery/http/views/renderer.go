package views

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	baseTemplate   = "templates/base.html"
	layoutTemplate = "base"
)

// Page templates
const (
	TemplatePage              = "page.html"
	TemplateServices          = "services.html"
	TemplateAppointments      = "appointments.html"
	TemplateContact           = "contact.html"
	TemplateLogin             = "login.html"
	TemplateRegister          = "register.html"
	TemplateProfile           = "profile.html"
	TemplateMyAppointments    = "my_appointments.html"
	TemplateAppointmentDetail = "appointment_detail.html"
	TemplateError             = "error.html"
)

var errUnknownTemplate = errors.New("unknown template")

// Renderer executes page templates inside the shared layout. Every page is
// parsed into its own clone of the layout so "content" blocks never collide.
type Renderer struct {
	pages map[string]*template.Template
	Log   *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	base, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, baseTemplate)
	if err != nil {
		return nil, exceptions.ErrRenderTemplate(err, baseTemplate)
	}

	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, exceptions.ErrRenderTemplate(err, "templates/*.html")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == baseTemplate {
			continue
		}
		page, err := base.Clone()
		if err != nil {
			return nil, exceptions.ErrRenderTemplate(err, file)
		}
		if _, err := page.ParseFS(templatesFS, file); err != nil {
			return nil, exceptions.ErrRenderTemplate(err, file)
		}
		pages[path.Base(file)] = page
	}

	return &Renderer{pages: pages, Log: logger}, nil
}

// Render writes the page only once it executed completely, so a template
// failure never leaves half a page on the wire.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, name string, data PageData) error {
	page, ok := r.pages[name]
	if !ok {
		return exceptions.ErrRenderTemplate(errUnknownTemplate, name)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		return exceptions.ErrRenderTemplate(err, name)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}

// RenderError shows the error page for err. Errors that are not a
// CustomError are reported as a generic internal error.
func (r *Renderer) RenderError(w http.ResponseWriter, req *http.Request, err error) {
	customErr := utils.ResolveCustomError(r.Log, err)

	data := PageData{
		Title:       "Something went wrong",
		CurrentPath: req.URL.Path,
		RequestID:   utils.GetRequestID(req.Context()),
		Flash:       ErrorFlash(customErr.ClientMessage),
		Data:        ErrorPage{StatusCode: customErr.StatusCode},
	}
	if customErr.StatusCode == constvars.StatusNotFound {
		data.Title = "Page not found"
	}

	if renderErr := r.Render(w, customErr.StatusCode, TemplateError, data); renderErr != nil {
		r.Log.Error("Renderer.RenderError error rendering error page",
			zap.String(constvars.LoggingRequestIDKey, data.RequestID),
			zap.Error(renderErr),
		)
		http.Error(w, customErr.ClientMessage, customErr.StatusCode)
	}
}
