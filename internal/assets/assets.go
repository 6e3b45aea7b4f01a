// Package assets serves the compiled dashboard bundle. It is the last stop
// in route resolution: anything the API routes did not claim either matches
// a servable asset name or is a 404.
package assets

import (
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/protonsvc/rasa-nlg/internal/api"
)

// DefaultPatterns lists the asset names the server will hand out.
var DefaultPatterns = []string{"*.css", "*.html", "*.js", "*.ico", "*.png"}

// Handler serves static files from a dist directory.
type Handler struct {
	dir      string
	patterns []string
}

// NewHandler creates an asset handler rooted at dir. Nil patterns fall back
// to DefaultPatterns.
func NewHandler(dir string, patterns []string) *Handler {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &Handler{dir: dir, patterns: patterns}
}

// Matches reports whether the request path names a servable asset. The root
// path always matches; it is served as index.html.
func (h *Handler) Matches(urlPath string) bool {
	if urlPath == "/" {
		return true
	}
	name := path.Base(urlPath)
	for _, pattern := range h.patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ServeHTTP serves the asset, or the standard error envelope on failure.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.WriteError(w, api.ErrMethodNotAllowed)
		return
	}

	name := path.Clean(r.URL.Path)
	if name == "/" || name == "." {
		name = "/index.html"
	}
	if strings.Contains(name, "..") {
		api.WriteError(w, api.ErrNotFound)
		return
	}

	data, err := os.ReadFile(filepath.Join(h.dir, filepath.FromSlash(name)))
	if err != nil {
		api.WriteError(w, api.ErrServer)
		return
	}

	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Write(data)
}
