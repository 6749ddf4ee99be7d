package vdom

import (
	"strconv"
	"strings"
)

// attr creates an Attr with a string value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: StringValue(value)}
}

// flag creates an Attr with a boolean flag value.
func flag(key string, on bool) Attr {
	return Attr{Key: key, Value: BoolValue(on)}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Key sets the reconciliation key. Carried on the node as an extension
// point; positional child diffing does not consult it.
func Key(k string) Attr { return attr("key", k) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Link and media attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(v string) Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", id) }

// Disabled sets the disabled flag.
func Disabled() Attr { return flag("disabled", true) }

// Checked sets the checked flag.
func Checked(on bool) Attr { return flag("checked", on) }

// Autofocus sets the autofocus flag.
func Autofocus() Attr { return flag("autofocus", true) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", strconv.FormatBool(expanded)) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", strconv.Itoa(index)) }

// Visibility attributes

// Hidden sets the hidden flag.
func Hidden() Attr { return flag("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }
