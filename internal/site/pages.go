// Package site holds the portfolio pages and the demo components they
// embed. Pages are ordinary components; the dev server and the static
// exporter both render them through RenderPage.
package site

import (
	"github.com/weft-ui/weft/pkg/comp"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Page is one routable page of the site.
type Page struct {
	Name  string
	Path  string
	Title string
	Body  func() comp.Component
}

// Pages returns the site's pages in navigation order.
func Pages() []Page {
	return []Page{
		{Name: "home", Path: "/", Title: "Home", Body: func() comp.Component { return NewHome() }},
		{Name: "counter", Path: "/demos/counter", Title: "Counter", Body: func() comp.Component { return NewCounter() }},
		{Name: "kebab", Path: "/demos/kebab", Title: "Kebab Converter", Body: func() comp.Component { return NewKebabConverter() }},
		{Name: "palette", Path: "/demos/palette", Title: "Command Palette", Body: func() comp.Component { return NewCommandPalette(DefaultCommands()) }},
		{Name: "terrain", Path: "/demos/terrain", Title: "Terrain", Body: func() comp.Component { return NewTerrainDemo() }},
	}
}

// PageByPath finds a page by its canonical path.
func PageByPath(path string) (Page, bool) {
	for _, p := range Pages() {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

// DefaultCommands are the palette entries shown on the demo page. Their
// actions are placeholders; the demo is about summoning and filtering.
func DefaultCommands() []Command {
	return []Command{
		{Name: "Go to home"},
		{Name: "Go to counter demo"},
		{Name: "Go to terrain demo"},
		{Name: "Toggle dark mode"},
		{Name: "Copy page link"},
	}
}

// Home is the landing page.
type Home struct{}

// NewHome creates the landing page component.
func NewHome() *Home { return &Home{} }

func (*Home) Styles() string {
	return `.home-demos { display: grid; gap: 0.5rem; }`
}

func (*Home) Compose() *vdom.VNode {
	var links []*vdom.VNode
	for _, p := range Pages() {
		if p.Name == "home" {
			continue
		}
		links = append(links, vdom.Li(
			vdom.A(vdom.Href(p.Path), vdom.Text(p.Title)),
		))
	}

	return vdom.Div(
		vdom.Class("home"),
		vdom.H1(vdom.Text("Weft")),
		vdom.P(vdom.Text("A tiny UI framework and the site built on it.")),
		vdom.H2(vdom.Text("Demos")),
		vdom.Ul(vdom.Class("home-demos"), links),
	)
}
