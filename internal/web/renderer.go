package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// AppName is shown in every page title.
const AppName = "Travel Manager"

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the envelope handed to every template: the signed-in user (nil
// when anonymous), an optional form error and page-specific data.
type Page struct {
	AppName string
	User    *models.User
	Error   string
	Data    any
}

// Renderer executes the embedded page templates. Markup is deliberately
// minimal; page structure is not this application's concern.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes a page with the given status. The AppName field is filled
// in when the caller left it empty.
func (rnd *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) {
	if data.AppName == "" {
		data.AppName = AppName
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := rnd.tmpl.ExecuteTemplate(w, page, data); err != nil {
		logger.Log.Errorw("template execution failed", "page", page, "err", err)
	}
}
