package responses

import "html/template"

// Page is static content rendered to sanitized HTML.
type Page struct {
	Name  string
	Title string
	Body  template.HTML
}
