package render

import "strings"

// entity maps each HTML metacharacter to its escaped form. All five
// metacharacters are ASCII, so a byte-indexed table is enough and
// multibyte runes pass through the scan untouched.
var entity = [256]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

// escape converts HTML metacharacters to their entity equivalents to
// prevent XSS. The same rule covers text content and attribute values,
// so output never depends on where a string ends up.
func escape(s string) string {
	// Most strings carry no metacharacters at all. Scan before
	// allocating so the common case returns the input unchanged.
	i := 0
	for i < len(s) && entity[s[i]] == "" {
		i++
	}
	if i == len(s) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)
	buf.WriteString(s[:i])
	for ; i < len(s); i++ {
		if e := entity[s[i]]; e != "" {
			buf.WriteString(e)
		} else {
			buf.WriteByte(s[i])
		}
	}
	return buf.String()
}
