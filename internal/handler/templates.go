package handler

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded HTML templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
