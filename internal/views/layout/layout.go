// Package layout renders the document shell shared by every page.
package layout

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// Flash categories understood by the layout.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notice shown above the page content.
type Flash struct {
	Category string
	Message  string
}

// NavLink is one entry of the top navigation.
type NavLink struct {
	Label string
	Href  string
}

// Navigation lists the top-level pages in display order.
var Navigation = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Browse", Href: "/recipes"},
	{Label: "Add a recipe", Href: "/add_recipe"},
}

//go:embed templates/*.html
var files embed.FS

var shell = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"flashClass": flashClass,
}).ParseFS(files, "templates/page.html"))

type pageData struct {
	Title      string
	Flashes    []Flash
	Navigation []NavLink
	Content    template.HTML
}

// Page wraps content in the document shell. Content is rendered first so a
// failing component never produces a half-written document.
func Page(title string, flashes []Flash, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body bytes.Buffer
		if content != nil {
			if err := content.Render(ctx, &body); err != nil {
				return err
			}
		}
		return shell.Execute(w, pageData{
			Title:      title,
			Flashes:    flashes,
			Navigation: Navigation,
			Content:    template.HTML(body.String()),
		})
	})
}

func flashClass(category string) string {
	if category == FlashError {
		return "flash flash-error"
	}
	return "flash flash-success"
}
