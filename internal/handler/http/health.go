package http

import (
	"net/http"
)

// health is a liveness probe. It reports the process is up; it does not
// check the asset bundle, which has its own degraded-mode response.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
