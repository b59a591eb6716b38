// Package markout builds HTML documents from typed Go trees.
//
// This is the recommended import for most sites:
//
//	import "github.com/markout-dev/markout"
//
// Usage:
//
//	doc := markout.El("p", markout.Class("intro"), markout.Text("hello"))
//	html, err := markout.RenderString(doc)
//
// The full HTML element and attribute catalog lives in pkg/node, which
// page code typically dot-imports. Site assembly, asset publishing, and
// serving live in pkg/site and pkg/serve.
package markout

import (
	"github.com/markout-dev/markout/pkg/node"
	"github.com/markout-dev/markout/pkg/render"
)

// =============================================================================
// Node model (re-export from pkg/node)
// =============================================================================

// Node is one vertex of a document tree.
type Node = node.Node

// Kind is the node type discriminator.
type Kind = node.Kind

// Kind constants
const (
	KindElement  = node.KindElement
	KindAttr     = node.KindAttr
	KindBoolAttr = node.KindBoolAttr
	KindText     = node.KindText
	KindRaw      = node.KindRaw
	KindGroup    = node.KindGroup
	KindDoctype  = node.KindDoctype
	KindNone     = node.KindNone
)

// =============================================================================
// Constructors (re-export from pkg/node)
// =============================================================================

// El creates an element node. Attribute children attach to the tag,
// everything else becomes content.
//
// Example:
//
//	markout.El("a", markout.Attr("href", "/about"), markout.Text("About"))
var El = node.El

// Attr creates a name="value" attribute node.
var Attr = node.Attr

// BoolAttr creates a valueless attribute node (disabled, checked).
var BoolAttr = node.BoolAttr

// Text creates a text node. Content is escaped on render.
var Text = node.Text

// Textf creates a text node from a format string.
var Textf = node.Textf

// Raw creates a raw markup node. Content renders verbatim, so it must
// come from a trusted source.
var Raw = node.Raw

// Group bundles several nodes into one without a wrapper element.
var Group = node.Group

// Doctype prefixes root with the HTML5 doctype preamble.
var Doctype = node.Doctype

// None returns the marker node that renders as nothing.
var None = node.None

// Class sets the class attribute, joining multiple classes with spaces.
var Class = node.Class

// ClassIf sets the class attribute only when condition is true.
var ClassIf = node.ClassIf

// Data creates a data-* attribute.
var Data = node.Data

// =============================================================================
// Conditionals and iteration (re-export from pkg/node)
// =============================================================================

// If returns n when condition is true and None otherwise.
var If = node.If

// IfElse returns ifTrue or ifFalse depending on condition.
var IfElse = node.IfElse

// When calls fn only when condition is true. Use it when building the
// node is expensive or reads state that is invalid on the false branch.
var When = node.When

// Unless returns n when condition is false.
var Unless = node.Unless

// Case pairs a match value with its node for Switch.
type Case[T comparable] = node.Case[T]

// Switch returns the node of the first case matching value.
//
// Example:
//
//	markout.Switch(status,
//	    markout.Case_("open", markout.Text("Open")),
//	    markout.Case_("done", markout.Text("Done")),
//	    markout.Default[string](markout.Text("Unknown")),
//	)
func Switch[T comparable](value T, cases ...Case[T]) *Node {
	return node.Switch(value, cases...)
}

// Case_ builds a Switch case. The underscore avoids colliding with the
// keyword.
func Case_[T comparable](value T, n *Node) Case[T] {
	return node.Case_(value, n)
}

// Default builds the fallback Switch case.
func Default[T comparable](n *Node) Case[T] {
	return node.Default[T](n)
}

// Map builds one node per item and groups the results. Use Range when
// the index matters.
func Map[T any](items []T, fn func(item T) *Node) *Node {
	return node.Map(items, fn)
}

// Range maps items through fn and groups the results.
func Range[T any](items []T, fn func(item T, index int) *Node) *Node {
	return node.Range(items, fn)
}

// Repeat calls fn n times and groups the results.
var Repeat = node.Repeat

// =============================================================================
// Rendering (re-export from pkg/render)
// =============================================================================

// Render writes the document tree to w.
var Render = render.Render

// RenderString renders the document tree to a string.
var RenderString = render.RenderString

// Page describes a complete HTML document: title, meta, extra head
// nodes, and body content.
type Page = render.Page

// RenderPage assembles and renders a complete HTML document.
var RenderPage = render.RenderPage
