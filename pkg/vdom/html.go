package vdom

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

// RenderToString serializes a VNode tree to HTML. Event handlers are
// dropped, boolean flags render bare when set and are omitted when unset,
// and text is escaped. Used by the static exporter and test assertions.
func RenderToString(v *VNode) string {
	var b strings.Builder
	writeNode(&b, v)
	return b.String()
}

// RenderHTML writes the serialized tree to w.
func RenderHTML(w io.Writer, v *VNode) error {
	_, err := io.WriteString(w, RenderToString(v))
	return err
}

func writeNode(b *strings.Builder, v *VNode) {
	if v == nil {
		return
	}

	if v.Kind == KindText {
		b.WriteString(html.EscapeString(v.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(v.Tag)
	writeAttrs(b, v.Attrs)
	b.WriteByte('>')

	if IsVoidElement(v.Tag) {
		return
	}

	for _, child := range v.Children {
		writeNode(b, child)
	}

	b.WriteString("</")
	b.WriteString(v.Tag)
	b.WriteByte('>')
}

// writeAttrs serializes attributes in sorted key order for stable output.
func writeAttrs(b *strings.Builder, attrs Attrs) {
	if len(attrs) == 0 {
		return
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := attrs[key]
		switch val.Kind() {
		case AttrString:
			fmt.Fprintf(b, ` %s="%s"`, key, html.EscapeString(val.Str()))
		case AttrBool:
			if val.Flag() {
				b.WriteByte(' ')
				b.WriteString(key)
			}
		case AttrEvent:
			// Handlers have no HTML form.
		}
	}
}
