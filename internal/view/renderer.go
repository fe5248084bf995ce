// Package view renders the HTML pages. Templates are embedded and parsed once;
// each page is paired with the shared layout.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layout = "layout.html"

// Raw HTML in descriptions is escaped; WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Data is what every template executes against.
type Data struct {
	Page      any
	CSRFToken string
	Path      string
}

type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// New parses every page against the layout. Route names used by the url
// helper are resolved through e at render time.
func New(e *echo.Echo) (*Renderer, error) {
	names, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	funcs := funcMap(e)
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		base := path.Base(name)
		if base == layout {
			continue
		}
		t, err := template.New(layout).Funcs(funcs).ParseFS(templatesFS, "templates/"+layout, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", base, err)
		}
		pages[base] = t
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	token, _ := c.Get(echoMw.DefaultCSRFConfig.ContextKey).(string)

	if err := t.Execute(w, Data{Page: data, CSRFToken: token, Path: c.Request().URL.Path}); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func funcMap(e *echo.Echo) template.FuncMap {
	return template.FuncMap{
		"url": func(name string, params ...any) string {
			return e.Reverse(name, params...)
		},
		"markdown": renderMarkdown,
		"longDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"isoDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
	}
}

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}
