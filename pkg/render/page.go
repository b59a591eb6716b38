package render

import (
	"io"

	"github.com/markout-dev/markout/pkg/node"
)

// Page contains all data needed to render a complete HTML document.
type Page struct {
	// Title is the page title. The title element is always emitted,
	// even when empty.
	Title string

	// Description, when set, becomes a description meta tag.
	Description string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Head contains extra nodes appended to the document head after
	// the standard charset, viewport, title and description entries.
	Head []*node.Node

	// Body contains the document body content.
	Body []*node.Node
}

// Node assembles the full document tree for the page, doctype included.
func (p Page) Node() *node.Node {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	head := []*node.Node{
		node.El("meta", node.Attr("charset", "utf-8")),
		node.El("meta",
			node.Attr("name", "viewport"),
			node.Attr("content", "width=device-width, initial-scale=1"),
		),
		node.El("title", node.Text(p.Title)),
	}
	if p.Description != "" {
		head = append(head, node.El("meta",
			node.Attr("name", "description"),
			node.Attr("content", p.Description),
		))
	}
	head = append(head, p.Head...)

	return node.Doctype(
		node.El("html",
			node.Attr("lang", lang),
			node.El("head", head...),
			node.El("body", p.Body...),
		),
	)
}

// RenderPage renders a complete HTML document to the given writer.
func RenderPage(w io.Writer, p Page) error {
	return Render(w, p.Node())
}
