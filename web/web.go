package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates 首页模板
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}

// Static 静态资源, 以 /static 为根
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
