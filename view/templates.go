package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"id_console_app_go/services"
	"id_console_app_go/web"

	"github.com/labstack/echo/v4"
)

// Engine renders HTML templates. It satisfies echo.Renderer.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title  string
	Notice string
	Error  string
	Data   any
}

// NewEngine parses embedded templates at startup.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		// Wire dates are yyyy-MM-dd / RFC 3339; displayed dates use a fixed
		// locale format.
		"formatDateTime": func(s string) string {
			for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
				if t, err := time.Parse(layout, s); err == nil {
					return t.Format("02 Jan 2006 15:04")
				}
			}
			return s
		},
		"statusBadge": services.StatusBadgeClass,
		"upper":       strings.ToUpper,
		"orNA": func(s string) string {
			if s == "" {
				return "N/A"
			}
			return s
		},
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template with TemplateData.
func (e *Engine) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	return e.templates.ExecuteTemplate(w, name, data)
}
