package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// assetsMountPoint is where the frontend bundle is mounted. It is kept off
// the root so it cannot shadow the agent API routes.
const assetsMountPoint = "/app"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// The auth gate is installed only when a complete credential pair was
	// configured; it checks the protected prefixes itself, so unprotected
	// routes pass through it untouched.
	if h.authEnabled {
		router.Use(h.withBasicAuth)
	}

	router.Get("/api/health", h.health)
	router.Get("/api/version/", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metricsHandler())

	router.Mount(assetsMountPoint, http.StripPrefix(assetsMountPoint, h.assets))

	return router
}
