// Package interop bridges markout trees and templ components.
//
// Projects migrating from templ, or mixing the two, can mount a templ
// component inside a markout page or hand a markout tree to code that
// expects a templ.Component. Conversion costs one render into a
// buffer; there is no shared representation underneath.
package interop

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/markout-dev/markout/pkg/node"
	"github.com/markout-dev/markout/pkg/render"
)

// FromTempl renders a templ component and wraps the output as a raw
// node. Templ escapes its own interpolations, so the markup is trusted
// as-is.
func FromTempl(ctx context.Context, c templ.Component) (*node.Node, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return node.Raw(buf.String()), nil
}

// ToTempl wraps a markout tree as a templ component. Rendering is
// deferred until the component itself renders.
func ToTempl(n *node.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render.Render(w, n)
	})
}
