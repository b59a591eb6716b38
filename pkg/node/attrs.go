package node

import "strings"

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) *Node {
	return Attr("class", strings.Join(classes, " "))
}

// ClassIf sets the class attribute only when condition is true.
// Duplicate attribute names are not merged on render, so prefer Class
// with a conditional value when the element already has a class.
func ClassIf(condition bool, class string) *Node {
	if condition {
		return Attr("class", class)
	}
	return none
}

// Data creates a data-* attribute.
// Example: Data("id", "123") renders as data-id="123".
func Data(key, value string) *Node {
	return Attr("data-"+key, value)
}

// Draggable sets the draggable attribute. The attribute is enumerated
// rather than boolean, so it carries an explicit "true" value.
func Draggable() *Node {
	return Attr("draggable", "true")
}

// Download sets the download attribute, with an optional filename.
func Download(filename ...string) *Node {
	if len(filename) > 0 {
		return Attr("download", filename[0])
	}
	return BoolAttr("download")
}
