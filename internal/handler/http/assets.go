// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/logger"
)

const (
	// indexDocument is the root document of the frontend bundle; it doubles
	// as the fallback for client-side-routed paths.
	indexDocument = "index.html"

	// assetsNotBuiltMessage is the fixed degraded-mode response body.
	assetsNotBuiltMessage = "Frontend not built. Run 'npm run build' in the frontend directory."
)

// AssetRouter serves the prebuilt frontend bundle (the Vite dist directory).
//
// A request resolving to a regular file under the root is served as that
// file, with the content type inferred from the extension. Any other request
// — a directory, a client-side route, a typo — serves the root index
// document instead of a 404, which is what a single-page application needs.
//
// If the root directory or its index document is missing the router is in
// degraded mode: every request gets a fixed 503 telling the operator to
// build the bundle. The check runs once, at construction, never per request.
type AssetRouter struct {
	root     string
	degraded bool
}

// NewAssetRouter constructs the router over dir, probing the directory and
// its index document exactly once.
func NewAssetRouter(dir string, logger *logger.Logger) *AssetRouter {
	degraded := !isRegularFile(filepath.Join(dir, indexDocument))
	if degraded {
		logger.Warn().
			Str("dir", dir).
			Msg("frontend build directory not found or incomplete, serving 503 for all asset requests")
	}

	return &AssetRouter{root: dir, degraded: degraded}
}

// Degraded reports whether the router was constructed without a usable
// bundle.
func (ar *AssetRouter) Degraded() bool {
	return ar.degraded
}

func (ar *AssetRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if ar.degraded {
		writePlainText(w, http.StatusServiceUnavailable, assetsNotBuiltMessage)
		return
	}

	// Clean with a leading slash so ".." segments collapse before the
	// request path ever touches the file system.
	name := filepath.Join(ar.root, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if !isRegularFile(name) {
		name = filepath.Join(ar.root, indexDocument)
	}

	http.ServeFile(w, r, name)
}

func isRegularFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
