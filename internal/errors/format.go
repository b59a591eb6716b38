package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ANSI escape sequences for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() { colorEnabled = false }

// EnableColors enables ANSI color output.
func EnableColors() { colorEnabled = true }

// paint wraps text in an ANSI sequence when colors are enabled.
func paint(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(s string) string    { return paint(colorRed, s) }
func green(s string) string  { return paint(colorGreen, s) }
func yellow(s string) string { return paint(colorYellow, s) }
func blue(s string) string   { return paint(colorBlue, s) }
func cyan(s string) string   { return paint(colorCyan, s) }
func white(s string) string  { return paint(colorWhite, s) }
func gray(s string) string   { return paint(colorGray, s) }
func bold(s string) string   { return paint(colorBold, s) }

// Format renders the error for terminal display, one block per
// populated field: header, source excerpt, detail, hint, example,
// documentation link.
func (e *Error) Format() string {
	var b strings.Builder
	b.WriteString("\n")
	e.writeHeader(&b)
	e.writeSource(&b)
	e.writeDetail(&b)
	e.writeHints(&b)
	return b.String()
}

func (e *Error) writeHeader(b *strings.Builder) {
	b.WriteString(red(bold("ERROR")))
	if e.Code != "" {
		b.WriteString(white(bold(" " + e.Code)))
	}
	b.WriteString(white(bold(": ")))
	b.WriteString(white(e.Message))
	b.WriteString("\n\n")
}

// writeSource prints the location line and, when context lines were
// captured, a numbered excerpt with the offending line marked.
func (e *Error) writeSource(b *strings.Builder) {
	if e.Location == nil {
		return
	}
	b.WriteString("  ")
	b.WriteString(cyan(e.Location.String()))
	b.WriteString("\n\n")

	if len(e.Context) == 0 {
		return
	}

	start := e.Location.contextStart()
	width := len(strconv.Itoa(start + len(e.Context) - 1))
	if width < 4 {
		width = 4
	}

	for i, src := range e.Context {
		n := start + i
		marker := "  "
		if n == e.Location.Line {
			marker = red("→ ")
		}
		b.WriteString("  ")
		b.WriteString(marker)
		fmt.Fprintf(b, "%*d ", width, n)
		b.WriteString(gray("│ "))
		b.WriteString(src)
		b.WriteString("\n")

		if n == e.Location.Line && e.Location.Column > 0 {
			b.WriteString(strings.Repeat(" ", 4+width+1))
			b.WriteString(gray("│ "))
			b.WriteString(strings.Repeat(" ", e.Location.Column-1))
			b.WriteString(red("^"))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

func (e *Error) writeDetail(b *strings.Builder) {
	if e.Detail == "" {
		return
	}
	for _, line := range wrapText(e.Detail, 70) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (e *Error) writeHints(b *strings.Builder) {
	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(cyan("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	if e.Example != "" {
		b.WriteString("  ")
		b.WriteString(cyan("Example:"))
		b.WriteString("\n")
		for _, line := range strings.Split(e.Example, "\n") {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.DocURL != "" {
		b.WriteString("  ")
		b.WriteString(gray("Learn more: "))
		b.WriteString(blue(e.DocURL))
		b.WriteString("\n")
	}
}

// FormatCompact returns a single-line "location: code: message" form.
func (e *Error) FormatCompact() string {
	var parts []string
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// jsonLocation mirrors Location with wire-style keys.
type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	DocURL     string        `json:"docUrl,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *Error) FormatJSON() string {
	payload := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	}
	if e.Location != nil {
		payload.Location = &jsonLocation{
			File:   e.Location.File,
			Line:   e.Location.Line,
			Column: e.Location.Column,
		}
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

// wrapText greedily wraps text at word boundaries. Words longer than
// the width get a line of their own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// PrintError prints a formatted error to stderr. Coded errors render
// with their full block layout, anything else as a bare header.
func PrintError(err error) {
	var me *Error
	if stderrors.As(err, &me) {
		fmt.Fprint(os.Stderr, me.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
}
