package mtest

import (
	"strings"
	"testing"

	"github.com/markout-dev/markout/pkg/node"
	"github.com/markout-dev/markout/pkg/render"
)

// RenderToString renders a node and returns the HTML string, failing
// the test on render errors.
//
// Example:
//
//	html := mtest.RenderToString(t, MyComponent())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(t *testing.T, n *node.Node) string {
	t.Helper()
	html, err := render.RenderString(n)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return html
}

// ExpectRenders asserts that a node renders to exactly want.
//
// Example:
//
//	mtest.ExpectRenders(t, node.El("p", node.Text("hi")), "<p>hi</p>")
func ExpectRenders(t *testing.T, n *node.Node, want string) {
	t.Helper()
	if got := RenderToString(t, n); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	mtest.ExpectContains(t, Dashboard(user), "Welcome Admin")
func ExpectContains(t *testing.T, n *node.Node, expected string) {
	t.Helper()
	if html := RenderToString(t, n); !strings.Contains(html, expected) {
		t.Errorf("output missing %q:\n%s", expected, clip(html))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
//
// Example:
//
//	mtest.ExpectNotContains(t, Dashboard(user), "Error")
func ExpectNotContains(t *testing.T, n *node.Node, unexpected string) {
	t.Helper()
	if html := RenderToString(t, n); strings.Contains(html, unexpected) {
		t.Errorf("output unexpectedly contains %q:\n%s", unexpected, clip(html))
	}
}

// ExpectElement asserts that rendered output contains a tag. The match
// is anchored to an opening angle bracket, so looking for "b" does not
// pass on "<button>".
//
// Example:
//
//	mtest.ExpectElement(t, Toolbar(), "button")
func ExpectElement(t *testing.T, n *node.Node, tag string) {
	t.Helper()
	html := RenderToString(t, n)
	if strings.Contains(html, "<"+tag+">") || strings.Contains(html, "<"+tag+" ") {
		return
	}
	t.Errorf("no <%s> element in output:\n%s", tag, clip(html))
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	mtest.ExpectAttribute(t, Toolbar(), "class", "btn-primary")
func ExpectAttribute(t *testing.T, n *node.Node, attr, value string) {
	t.Helper()
	html := RenderToString(t, n)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("attribute %s=%q not in output:\n%s", attr, value, clip(html))
	}
}

// clip keeps failure output readable when a large document fails an
// assertion.
func clip(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
