package site

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markout-dev/markout/internal/errors"
	"github.com/markout-dev/markout/pkg/node"
	"github.com/markout-dev/markout/pkg/render"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestImageSize(t *testing.T) {
	path := writePNG(t, 320, 200)

	w, h, err := ImageSize(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 320 || h != 200 {
		t.Errorf("got %dx%d, want 320x200", w, h)
	}
}

func TestImageSize_Missing(t *testing.T) {
	_, _, err := ImageSize(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error")
	}
	merr, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if merr.Code != "E305" {
		t.Errorf("code = %q, want E305", merr.Code)
	}
}

func TestImageSize_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.png")
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := ImageSize(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "decoding") {
		t.Errorf("error = %q, want decoding", err.Error())
	}
}

func TestImgAttrs(t *testing.T) {
	path := writePNG(t, 16, 9)

	attrs, err := ImgAttrs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html, err := render.RenderString(node.El("img", node.Attr("src", "/img.png"), attrs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `<img src="/img.png" width="16" height="9">`; html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}
