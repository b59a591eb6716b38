// Package nav provides anchor helpers with server-side active state.
//
// Because documents are rendered ahead of time, the current path is
// known at build time and active navigation styling can be computed
// during rendering instead of in the browser.
package nav

import (
	"strings"

	"github.com/markout-dev/markout/pkg/node"
)

// Link creates an anchor element.
func Link(href string, children ...*node.Node) *node.Node {
	kids := make([]*node.Node, 0, len(children)+1)
	kids = append(kids, node.Attr("href", href))
	kids = append(kids, children...)
	return node.El("a", kids...)
}

// ExternalLink creates an anchor that opens in a new tab with the
// usual rel hardening.
func ExternalLink(href string, children ...*node.Node) *node.Node {
	kids := make([]*node.Node, 0, len(children)+3)
	kids = append(kids,
		node.Attr("href", href),
		node.Attr("target", "_blank"),
		node.Attr("rel", "noopener noreferrer"),
	)
	kids = append(kids, children...)
	return node.El("a", kids...)
}

// IsActive reports whether href matches currentPath. With exact set
// the paths must be equal. Otherwise href may also be a parent of
// currentPath at a segment boundary, so "/blog" matches "/blog/post"
// but not "/blogging". The root path only ever matches exactly, since
// every path has "/" as a prefix.
func IsActive(currentPath, href string, exact bool) bool {
	if currentPath == href {
		return true
	}
	if exact || href == "/" {
		return false
	}
	return strings.HasPrefix(currentPath, strings.TrimSuffix(href, "/")+"/")
}

// ActiveLink creates an anchor that carries activeClass when href
// matches currentPath. class and activeClass are joined into a single
// class attribute, so an active link never emits duplicates.
func ActiveLink(currentPath, href, class, activeClass string, exact bool, children ...*node.Node) *node.Node {
	classes := class
	if IsActive(currentPath, href, exact) {
		if classes == "" {
			classes = activeClass
		} else {
			classes += " " + activeClass
		}
	}

	kids := make([]*node.Node, 0, len(children)+2)
	kids = append(kids, node.Attr("href", href))
	if classes != "" {
		kids = append(kids, node.Attr("class", classes))
	}
	kids = append(kids, children...)
	return node.El("a", kids...)
}

// NavLink is ActiveLink with common defaults. It adds the "active"
// class when the path matches exactly.
func NavLink(currentPath, href string, children ...*node.Node) *node.Node {
	return ActiveLink(currentPath, href, "", "active", true, children...)
}
