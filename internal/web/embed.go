package web

import "embed"

// templateFS holds the page templates, StaticFS the stylesheet served under /static/
var (
	//go:embed templates/*.tmpl
	templateFS embed.FS

	//go:embed static/css/*.css
	StaticFS embed.FS
)
