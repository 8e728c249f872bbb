package view

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Page is the data passed to the index layout.
type Page struct {
	Title   string
	Content template.HTML
}

// Renderer satisfies echo.Renderer using the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer returns a Renderer ready to be assigned to echo.Echo.Renderer.
func NewRenderer() *Renderer {
	return &Renderer{tmpl: templates}
}

// Render executes the named template with data.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
