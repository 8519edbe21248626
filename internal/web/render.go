package web

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/Nishanth262/portfolio/internal/sections"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcMap = template.FuncMap{
	"icon": sections.Icon,
}

// LoadTemplates parses the page and fragment templates. Each file is addressable by its base name.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("embedded static directory missing: " + err.Error())
	}
	return sub
}
