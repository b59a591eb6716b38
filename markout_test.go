package markout_test

import (
	"strings"
	"testing"

	"github.com/markout-dev/markout"
)

func TestRenderString(t *testing.T) {
	doc := markout.El("p",
		markout.Class("intro"),
		markout.Text("hello & welcome"),
	)

	got, err := markout.RenderString(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<p class="intro">hello &amp; welcome</p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConditionals(t *testing.T) {
	doc := markout.El("div",
		markout.If(true, markout.El("span", markout.Text("yes"))),
		markout.If(false, markout.El("span", markout.Text("no"))),
		markout.Unless(false, markout.Text("!")),
	)

	got, err := markout.RenderString(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div><span>yes</span>!</div>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSwitch(t *testing.T) {
	render := func(status string) string {
		t.Helper()
		n := markout.Switch(status,
			markout.Case_("open", markout.Text("Open")),
			markout.Case_("done", markout.Text("Done")),
			markout.Default[string](markout.Text("Unknown")),
		)
		got, err := markout.RenderString(n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return got
	}

	if got := render("done"); got != "Done" {
		t.Errorf("got %q, want %q", got, "Done")
	}
	if got := render("weird"); got != "Unknown" {
		t.Errorf("got %q, want %q", got, "Unknown")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b"}
	list := markout.El("ul", markout.Range(items, func(item string, _ int) *markout.Node {
		return markout.El("li", markout.Text(item))
	}))

	got, err := markout.RenderString(list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul><li>a</li><li>b</li></ul>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderPage(t *testing.T) {
	var buf strings.Builder
	p := markout.Page{
		Title: "Home",
		Body:  []*markout.Node{markout.El("h1", markout.Text("Home"))},
	}

	if err := markout.RenderPage(&buf, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "<!doctype html><html") {
		t.Errorf("document does not start with doctype and root: %q", got[:40])
	}
	if !strings.Contains(got, "<title>Home</title>") {
		t.Error("title missing from head")
	}
	if !strings.Contains(got, "<h1>Home</h1>") {
		t.Error("body content missing")
	}
}
