package node

// If returns n when condition holds, None otherwise. The argument is
// built eagerly either way; use When if construction is expensive or
// only valid under the condition.
func If(condition bool, n *Node) *Node {
	if condition {
		return n
	}
	return none
}

// IfElse picks between two nodes on a condition.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only when condition holds, None otherwise.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return none
}

// Unless returns n when condition does NOT hold.
func Unless(condition bool, n *Node) *Node {
	return If(!condition, n)
}

// Case pairs a value with the node Switch returns for it.
type Case[T comparable] struct {
	Value     T
	Node      *Node
	IsDefault bool
}

// Case_ builds a Switch case. The underscore keeps the constructor
// from colliding with the type name.
func Case_[T comparable](value T, n *Node) Case[T] {
	return Case[T]{Value: value, Node: n}
}

// Default builds the fallback case for Switch.
func Default[T comparable](n *Node) Case[T] {
	return Case[T]{Node: n, IsDefault: true}
}

// Switch returns the node of the first case matching value. A value
// match wins over a default wherever the default sits in the list; with
// no match and no default the result is None.
func Switch[T comparable](value T, cases ...Case[T]) *Node {
	def := none
	for _, c := range cases {
		switch {
		case !c.IsDefault && c.Value == value:
			return c.Node
		case c.IsDefault && def == none:
			def = c.Node
		}
	}
	return def
}

// Map builds one node per item, returned as a single group so the
// result can sit in any child list. Use Range when the index matters.
func Map[T any](items []T, fn func(item T) *Node) *Node {
	return Range(items, func(item T, _ int) *Node { return fn(item) })
}

// Range maps a slice to nodes, returned as a single group so the
// result can sit in any child list.
func Range[T any](items []T, fn func(item T, index int) *Node) *Node {
	n := &Node{
		Kind:     KindGroup,
		Children: make([]*Node, 0, len(items)),
	}
	for i, item := range items {
		if child := fn(item, i); child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Repeat builds n nodes from an index function, returned as a group.
func Repeat(n int, fn func(i int) *Node) *Node {
	g := &Node{Kind: KindGroup}
	if n <= 0 {
		return g
	}
	g.Children = make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		if child := fn(i); child != nil {
			g.Children = append(g.Children, child)
		}
	}
	return g
}
