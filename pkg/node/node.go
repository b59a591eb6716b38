package node

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <a>, etc.
	KindAttr                 // name="value" attribute
	KindBoolAttr             // Valueless attribute (disabled, checked)
	KindText                 // Plain text, escaped on render
	KindRaw                  // Raw markup (dangerous)
	KindGroup                // Grouping without wrapper
	KindDoctype              // Doctype preamble plus document root
	KindNone                 // Renders nothing
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindAttr:
		return "Attr"
	case KindBoolAttr:
		return "BoolAttr"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindGroup:
		return "Group"
	case KindDoctype:
		return "Doctype"
	case KindNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Node is a single vertex of a document tree. Which fields carry
// meaning depends on Kind: elements use Name and Children, attributes
// use Name and Content, text and raw nodes use Content, groups and
// doctypes use Children only.
//
// Nodes are immutable after construction and may be shared between
// trees. Every constructor returns a fresh node except None, which
// returns a shared marker.
type Node struct {
	Kind     Kind    // Node type
	Name     string  // Tag name or attribute name
	Content  string  // Text, raw markup, or attribute value
	Children []*Node // Attributes and content, in input order
}

// IsAttr reports whether the node renders inside an opening tag.
func (n *Node) IsAttr() bool {
	return n != nil && (n.Kind == KindAttr || n.Kind == KindBoolAttr)
}

// El creates an element node. Attribute nodes may appear anywhere in
// children and in any interleaving with content; the renderer emits
// them inside the opening tag in input order, always before content.
// Nil children are dropped.
func El(name string, children ...*Node) *Node {
	n := &Node{
		Kind:     KindElement,
		Name:     name,
		Children: make([]*Node, 0, len(children)),
	}
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Attr creates a name="value" attribute node. The value is escaped on
// render; the name is written as given.
func Attr(name, value string) *Node {
	return &Node{Kind: KindAttr, Name: name, Content: value}
}

// BoolAttr creates a valueless attribute node such as disabled or
// checked. Presence is the value.
func BoolAttr(name string) *Node {
	return &Node{Kind: KindBoolAttr, Name: name}
}

// Text creates a text node. Content is escaped on render.
func Text(content string) *Node {
	return &Node{Kind: KindText, Content: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped markup node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(markup string) *Node {
	return &Node{Kind: KindRaw, Content: markup}
}

// Group collects several nodes into one without a wrapper element.
// The renderer splices group members into the parent's child list,
// attributes included, to arbitrary nesting depth. Nil children are
// dropped.
func Group(children ...*Node) *Node {
	n := &Node{
		Kind:     KindGroup,
		Children: make([]*Node, 0, len(children)),
	}
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Doctype prefixes root with the HTML5 doctype preamble. The root is
// rendered immediately after the preamble with no separator.
func Doctype(root *Node) *Node {
	return &Node{Kind: KindDoctype, Children: []*Node{root}}
}

var none = &Node{Kind: KindNone}

// None returns the shared marker node that renders as nothing.
func None() *Node {
	return none
}
