// Package templates renders the server-side pages. Pages are html/template
// files embedded at build time and exposed through Echo's Renderer interface;
// handlers refer to them by file name.
package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed pages/*.html
var pagesFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded pages. Panics on a malformed template,
// which is a build defect, not a runtime condition.
func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(pagesFS, "pages/*.html")),
	}
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
