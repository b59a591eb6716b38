// Package mtest provides testing helpers for markout trees.
//
// The helpers render a node and assert on the HTML, so component tests
// read as one line per expectation:
//
//	func TestCard(t *testing.T) {
//	    card := Card("Hello")
//	    mtest.ExpectElement(t, card, "article")
//	    mtest.ExpectContains(t, card, "Hello")
//	    mtest.ExpectAttribute(t, card, "class", "card")
//	}
//
// ExpectRenders pins exact output; RenderToString hands back the HTML
// for assertions the Expect helpers do not cover.
package mtest
