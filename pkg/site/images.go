package site

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	"github.com/markout-dev/markout/internal/errors"
	"github.com/markout-dev/markout/pkg/node"
)

// ImageSize returns the pixel dimensions of an image file. PNG, JPEG,
// GIF and WebP are supported.
func ImageSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, errors.New("E305").WithDetail("Image " + path).Wrap(err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, errors.Newf(errors.CategoryBuild, "decoding %s: %v", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// ImgAttrs returns width and height attributes for an image file.
// Emitting dimensions up front reserves layout space before the image
// loads.
func ImgAttrs(path string) (*node.Node, error) {
	w, h, err := ImageSize(path)
	if err != nil {
		return nil, err
	}
	return node.Group(node.Width(w), node.Height(h)), nil
}
