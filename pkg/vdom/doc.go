// Package vdom provides Weft's virtual DOM: an immutable description of a
// node tree and the diff that turns one description into another.
//
// # Core Types
//
// VNode is the fundamental building block, a tagged variant of an element
// or a text leaf. Attrs maps attribute names to AttrValue, a closed union
// of string values, boolean flags, and event handler references.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Construction is a pure data-building operation and never touches a live
// tree. Passing an argument the builders do not recognize is a programming
// error and panics at the call site.
//
// # Diffing
//
// Diff compares two VNode trees and returns the Patch operations that
// bring a live tree rendered from the first into agreement with the
// second. Children reconcile positionally by index; the Key field is
// carried as an extension point but never consulted.
package vdom
