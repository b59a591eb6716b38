package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/markout-dev/markout/pkg/node"
)

const doctype = "<!doctype html>"

// Render writes the HTML serialization of n to w.
//
// Nil nodes and None nodes produce no output. Attribute nodes outside
// an element's child list produce no output either, since there is no
// opening tag to attach them to.
func Render(w io.Writer, n *node.Node) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case node.KindElement:
		return renderElement(w, n)
	case node.KindText:
		_, err := io.WriteString(w, escape(n.Content))
		return err
	case node.KindRaw:
		_, err := io.WriteString(w, n.Content)
		return err
	case node.KindGroup:
		for _, child := range n.Children {
			if err := Render(w, child); err != nil {
				return err
			}
		}
		return nil
	case node.KindDoctype:
		if _, err := io.WriteString(w, doctype); err != nil {
			return err
		}
		for _, child := range n.Children {
			if err := Render(w, child); err != nil {
				return err
			}
		}
		return nil
	case node.KindAttr, node.KindBoolAttr:
		// An attribute with no enclosing element has nowhere to go.
		return nil
	case node.KindNone:
		return nil
	default:
		return fmt.Errorf("unknown node kind: %d", n.Kind)
	}
}

// RenderString renders n and returns the result as a string.
func RenderString(n *node.Node) (string, error) {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderElement(w io.Writer, n *node.Node) error {
	if _, err := io.WriteString(w, "<"+n.Name); err != nil {
		return err
	}

	if err := renderAttrPass(w, n.Children); err != nil {
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Void elements have no content and no closing tag.
	if node.IsVoid(n.Name) {
		return nil
	}

	if err := renderContentPass(w, n.Children); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</"+n.Name+">")
	return err
}

// renderAttrPass writes the attribute nodes among children into the
// opening tag, descending into groups so grouped attributes surface.
func renderAttrPass(w io.Writer, children []*node.Node) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		switch child.Kind {
		case node.KindAttr:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, child.Name, escape(child.Content)); err != nil {
				return err
			}
		case node.KindBoolAttr:
			if _, err := io.WriteString(w, " "+child.Name); err != nil {
				return err
			}
		case node.KindGroup:
			if err := renderAttrPass(w, child.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderContentPass writes the non-attribute nodes among children,
// descending into groups so the two passes see the same sequence.
func renderContentPass(w io.Writer, children []*node.Node) error {
	for _, child := range children {
		if child == nil || child.IsAttr() {
			continue
		}
		if child.Kind == node.KindGroup {
			if err := renderContentPass(w, child.Children); err != nil {
				return err
			}
			continue
		}
		if err := Render(w, child); err != nil {
			return err
		}
	}
	return nil
}
