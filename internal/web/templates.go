// Package web embeds and renders the portal's html templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates wraps the parsed template set. Pages are addressed by their
// {{define}} name: "input" and "cart".
type Templates struct {
	base *template.Template
}

func LoadTemplates() (*Templates, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Templates{base: t}, nil
}

func (t *Templates) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = t.base.ExecuteTemplate(w, name, data)
}
