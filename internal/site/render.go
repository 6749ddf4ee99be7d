package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/weft-ui/weft/pkg/comp"
	"github.com/weft-ui/weft/pkg/dom"
)

// RenderPage mounts the page on a fresh in-memory document and returns
// the complete HTML document: shell, installed component styles, nav,
// and the page body.
func RenderPage(p Page) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("site: rendering %q: %v", p.Name, r)
		}
	}()

	doc := dom.NewMemoryDocument()
	h := comp.Mount(doc, p.Body())
	defer h.Destroy()

	root, ok := h.Node().(*dom.MemoryNode)
	if !ok {
		return "", fmt.Errorf("site: page %q has no live node", p.Name)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">` + "\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	fmt.Fprintf(&b, "<title>%s · Weft</title>\n", html.EscapeString(p.Title))
	for _, css := range doc.Styles() {
		fmt.Fprintf(&b, "<style>%s</style>\n", css)
	}
	b.WriteString("</head>\n<body>\n")

	b.WriteString(`<nav class="site-nav">`)
	for i, page := range Pages() {
		if i > 0 {
			b.WriteString(" · ")
		}
		fmt.Fprintf(&b, `<a href="%s">%s</a>`, page.Path, html.EscapeString(page.Title))
	}
	b.WriteString("</nav>\n<main>\n")

	b.WriteString(root.HTML())

	b.WriteString("\n</main>\n</body>\n</html>\n")
	return b.String(), nil
}
