package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewFiles embed.FS

// NewViews returns the template engine for the embedded pages.
func NewViews() fiber.Views {
	sub, err := fs.Sub(viewFiles, "views")
	if err != nil {
		panic(err)
	}

	return html.NewFileSystem(http.FS(sub), ".html")
}
