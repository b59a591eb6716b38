// Package render serializes node trees into HTML text.
//
// The renderer walks each element twice: an attribute pass writes
// attribute nodes into the opening tag in input order, then a content
// pass writes everything else into the tag body. Group nodes are
// spliced into their parent's child sequence in both passes, so
// attributes bundled into a reusable group still land in the opening
// tag regardless of nesting depth. Attributes therefore always precede
// content in the output, whatever their position in the input.
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	html, err := render.RenderString(node.Div(node.Text("hello")))
//
// To stream to a writer:
//
//	err := render.Render(w, tree)
//
// # Full Documents
//
// Page assembles the standard document scaffold from a small
// configuration record:
//
//	err := render.RenderPage(w, render.Page{
//	    Title: "Home",
//	    Body:  []*node.Node{node.H1(node.Text("Hello"))},
//	})
//
// # Security
//
// All text content and attribute values are escaped through a single
// escape rule. Raw nodes bypass it and must only carry trusted markup.
package render
