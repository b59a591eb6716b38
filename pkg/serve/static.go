package serve

import (
	"net/http"
	"path"
	"strings"
)

// Fingerprinted assets never change under the same name, so they cache
// for a year. Everything else revalidates hourly.
const (
	cacheImmutable = "public, max-age=31536000, immutable"
	cacheShort     = "public, max-age=3600, must-revalidate"
)

// staticHandler serves files from dir at the given URL prefix with
// content-aware cache headers.
func staticHandler(prefix, dir string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl(r.URL.Path))
		files.ServeHTTP(w, r)
	})
}

func cacheControl(filePath string) string {
	if isFingerprinted(filePath) {
		return cacheImmutable
	}
	return cacheShort
}

// isFingerprinted reports whether the file name carries a content hash,
// e.g. "app.a1b2c3d4.css". The hash sits between the stem and the
// extension and is at least eight hex characters.
func isFingerprinted(filePath string) bool {
	name := path.Base(filePath)

	ext := path.Ext(name)
	if ext == "" {
		return false
	}
	stem := strings.TrimSuffix(name, ext)

	dot := strings.LastIndexByte(stem, '.')
	if dot < 1 {
		return false
	}
	return isHex(stem[dot+1:])
}

func isHex(s string) bool {
	if len(s) < 8 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
