// Package web holds the embedded HTML views: full tool pages rendered inside
// the main layout, and partial fragments swapped in by HTMX form posts.
// Embedding keeps rendering independent of the working directory.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

// NewEngine builds the Fiber views engine over the embedded templates.
// Template names are their paths without extension, e.g. "tools/uuid" or
// "partials/uuid_result".
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}
	return html.NewFileSystem(http.FS(sub), ".html"), nil
}
