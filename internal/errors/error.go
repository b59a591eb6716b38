package errors

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Category groups error codes by the subsystem that raises them.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryCatalog Category = "catalog"
	CategoryBuild   Category = "build"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// contextRadius is how many lines around a location are captured and
// shown. Format relies on the window being centered on the line,
// clamped at the top of the file.
const contextRadius = 2

// Location points into a source file, usually markout.json.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders the location as file:line or file:line:column.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	s := l.File + ":" + strconv.Itoa(l.Line)
	if l.Column > 0 {
		s += ":" + strconv.Itoa(l.Column)
	}
	return s
}

// contextStart returns the number of the first captured context line.
func (l *Location) contextStart() int {
	start := l.Line - contextRadius
	if start < 1 {
		start = 1
	}
	return start
}

// Error is a structured error with source location, suggestions, and documentation.
type Error struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, catalog, etc.).
	Category Category

	// Message is the one-line summary shown in every format.
	Message string

	// Detail elaborates on what went wrong in this instance.
	Detail string

	// Location points at the file position that triggered the error.
	Location *Location

	// Context contains source lines around Location.
	Context []string

	// Suggestion tells the user what to try next.
	Suggestion string

	// Example holds a corrected snippet, printed under the hints.
	Example string

	// DocURL links to the long-form writeup for this code.
	DocURL string

	// Wrapped is the underlying cause, if any.
	Wrapped error
}

// Error returns the code-prefixed summary.
func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds source location to the error and captures the
// surrounding lines from the file.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = contextWindow(file, line)
	return e
}

// WithLocationFromError extracts location from a compiler-style
// "file:line:column: message" error, such as the diagnostics emitted
// by go build.
func (e *Error) WithLocationFromError(err error) *Error {
	if err == nil {
		return e
	}
	loc, ok := parseDiagnostic(err.Error())
	if ok {
		e.Location = loc
		e.Context = contextWindow(loc.File, loc.Line)
	}
	return e
}

// WithSuggestion sets the next-step hint shown under the message.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithExample sets the corrected snippet shown under the hints.
func (e *Error) WithExample(ex string) *Error {
	e.Example = ex
	return e
}

// WithDetail sets the longer explanation printed after the summary.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithContext overrides the captured source lines.
func (e *Error) WithContext(lines []string) *Error {
	e.Context = lines
	return e
}

// Wrap records err as the underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// parseDiagnostic splits "file:line:col: message" into a Location. A
// missing or malformed column is tolerated; a missing line is not.
func parseDiagnostic(msg string) (*Location, bool) {
	file, rest, ok := strings.Cut(msg, ":")
	if !ok || file == "" {
		return nil, false
	}
	lineStr, rest, _ := strings.Cut(rest, ":")
	line, err := strconv.Atoi(strings.TrimSpace(lineStr))
	if err != nil || line <= 0 {
		return nil, false
	}
	colStr, _, _ := strings.Cut(rest, ":")
	col, _ := strconv.Atoi(strings.TrimSpace(colStr))
	return &Location{File: file, Line: line, Column: col}, true
}

// contextWindow reads the lines around target from a file. Returns nil
// when the file cannot be read; the formatter treats that as "no
// source available".
func contextWindow(file string, target int) []string {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	lo := target - contextRadius
	if lo < 1 {
		lo = 1
	}
	hi := target + contextRadius
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo > hi {
		return nil
	}
	out := make([]string, hi-lo+1)
	copy(out, lines[lo-1:hi])
	return out
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	tpl, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "Unknown error"}
	}
	return &Error{
		Code:     code,
		Category: tpl.Category,
		Message:  tpl.Message,
		Detail:   tpl.Detail,
		DocURL:   tpl.DocURL,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if me, ok := err.(*Error); ok {
		return me
	}
	return New(code).Wrap(err)
}
