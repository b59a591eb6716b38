package errors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"config error", "E101", "Invalid markout.json", CategoryConfig},
		{"catalog error", "E201", "Invalid catalog file", CategoryCatalog},
		{"build error", "E302", "Duplicate page path", CategoryBuild},
		{"publish error", "E403", "S3 upload failed", CategoryPublish},
		{"cli error", "E501", "Project directory already exists", CategoryCLI},
		{"unknown code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryBuild, "file %q not found", "index.html")
	if err.Message != `file "index.html" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryBuild {
		t.Errorf("Category = %q, want %q", err.Category, CategoryBuild)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"coded", New("E101"), "E101: Invalid markout.json"},
		{"uncoded", &Error{Message: "render failed"}, "render failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilderChain(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := New("E403").
		WithDetail("PUT request rejected").
		WithSuggestion("Check the bucket policy").
		WithExample(`"publish": {"target": "s3", "bucket": "my-site"}`).
		Wrap(inner)

	if err.Detail != "PUT request rejected" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "Check the bucket policy" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
	if !strings.Contains(err.Example, "my-site") {
		t.Errorf("Example = %q", err.Example)
	}
	if err.Unwrap() != inner {
		t.Error("Unwrap() should return the wrapped error")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{"nil location", nil, ""},
		{"with column", &Location{File: "markout.json", Line: 10, Column: 5}, "markout.json:10:5"},
		{"without column", &Location{File: "markout.json", Line: 10}, "markout.json:10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func writeConfigFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "markout.json")
	content := `{
  "name": "blog",
  "module": "example.com/blog",
  "output": "dist",
  "baseUrl": "/",
}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestError_WithLocation(t *testing.T) {
	path := writeConfigFixture(t)
	err := New("E101").WithLocation(path, 5, 16)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if got := err.Location.String(); got != path+":5:16" {
		t.Errorf("Location = %q", got)
	}

	// Window centered on line 5: lines 3 through 6 (file has 6 lines).
	if len(err.Context) != 4 {
		t.Fatalf("Context has %d lines, want 4", len(err.Context))
	}
	if !strings.Contains(err.Context[2], "baseUrl") {
		t.Errorf("Context[2] = %q, want the baseUrl line", err.Context[2])
	}
}

func TestError_WithLocation_TopOfFile(t *testing.T) {
	path := writeConfigFixture(t)
	err := New("E101").WithLocation(path, 1, 1)

	if start := err.Location.contextStart(); start != 1 {
		t.Errorf("contextStart() = %d, want 1", start)
	}
	if len(err.Context) == 0 || err.Context[0] != "{" {
		t.Errorf("Context[0] = %q, want the opening brace", err.Context)
	}
}

func TestParseDiagnostic(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		want   string
		wantOK bool
	}{
		{"full diagnostic", "site.go:12:5: undefined: Pge", "site.go:12:5", true},
		{"no column", "site.go:12: syntax error", "site.go:12", true},
		{"plain message", "exit status 1", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := parseDiagnostic(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && loc.String() != tt.want {
				t.Errorf("loc = %q, want %q", loc.String(), tt.want)
			}
		})
	}
}

func TestError_WithLocationFromError(t *testing.T) {
	err := New("E301").WithLocationFromError(fmt.Errorf("site.go:12:5: undefined: Pge"))
	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != "site.go" || err.Location.Line != 12 || err.Location.Column != 5 {
		t.Errorf("Location = %+v", err.Location)
	}

	// A plain error leaves the location unset.
	err = New("E301").WithLocationFromError(fmt.Errorf("exit status 1"))
	if err.Location != nil {
		t.Errorf("Location = %+v, want nil", err.Location)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E101") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	me := New("E101")
	if FromError(me, "E102") != me {
		t.Error("an *Error should pass through unchanged")
	}

	plain := fmt.Errorf("read failed")
	wrapped := FromError(plain, "E101")
	if wrapped.Code != "E101" || wrapped.Wrapped != plain {
		t.Errorf("FromError = %+v", wrapped)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	path := writeConfigFixture(t)
	err := New("E101").
		WithLocation(path, 5, 16).
		WithSuggestion("Remove the trailing comma").
		WithExample(`{"name": "blog", "output": "dist"}`)

	out := err.Format()

	for _, want := range []string{
		"ERROR E101: Invalid markout.json",
		path + ":5:16",
		"→",
		"^",
		"Hint: Remove the trailing comma",
		"Example:",
		"Learn more:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() should not contain ANSI codes with colors disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E101").WithLocation("markout.json", 10, 5)
	if got, want := err.FormatCompact(), "markout.json:10:5: E101: Invalid markout.json"; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}

	bare := Newf(CategoryBuild, "render failed")
	if got := bare.FormatCompact(); got != "render failed" {
		t.Errorf("FormatCompact() = %q, want %q", got, "render failed")
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E101").WithLocation("markout.json", 10, 5)

	var decoded struct {
		Code     string `json:"code"`
		Category string `json:"category"`
		Message  string `json:"message"`
		Location *struct {
			File string `json:"file"`
			Line int    `json:"line"`
		} `json:"location"`
	}
	if uerr := json.Unmarshal([]byte(err.FormatJSON()), &decoded); uerr != nil {
		t.Fatalf("unexpected error: %v", uerr)
	}
	if decoded.Code != "E101" || decoded.Category != "config" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Message != "Invalid markout.json" {
		t.Errorf("message = %q", decoded.Message)
	}
	if decoded.Location == nil || decoded.Location.File != "markout.json" || decoded.Location.Line != 10 {
		t.Errorf("location = %+v", decoded.Location)
	}
}

func TestRegistry(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Fatal("GetAllCodes() returned nothing")
	}

	tmpl, ok := GetTemplate("E101")
	if !ok {
		t.Fatal("E101 should exist")
	}
	if tmpl.Message != "Invalid markout.json" {
		t.Errorf("Message = %q", tmpl.Message)
	}

	if _, ok := GetTemplate("E999"); ok {
		t.Error("E999 should not exist")
	}

	Register("E999", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Custom test error",
	})
	defer delete(registry, "E999")

	if got := New("E999").Message; got != "Custom test error" {
		t.Errorf("Message = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short text", 100, []string{"short text"}},
		{"wraps", "this is a longer text that should be wrapped", 20,
			[]string{"this is a longer", "text that should be", "wrapped"}},
		{"empty", "", 10, nil},
		{"long word", "antidisestablishmentarianism is long", 10,
			[]string{"antidisestablishmentarianism", "is long"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaintToggle(t *testing.T) {
	EnableColors()
	if !strings.Contains(red("x"), colorRed) {
		t.Error("red should emit ANSI codes when colors are enabled")
	}

	DisableColors()
	defer EnableColors()
	if red("x") != "x" {
		t.Errorf("red = %q, want bare text with colors disabled", red("x"))
	}
}
