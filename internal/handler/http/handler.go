package http

import (
	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/config"
	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/logger"
)

type Handler struct {
	creds             config.Credentials
	authEnabled       bool
	protectedPrefixes []string
	version           string

	assets  *AssetRouter
	metrics *httpMetrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler from the merged startup configuration.
// The auth gate is armed only when the config carries a complete credential
// pair; otherwise every path is served without authentication.
func NewHandler(cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	creds, authEnabled := cfg.Credentials()

	logger.Info().Bool("basic_auth", authEnabled).Msg("http handler created")

	return &Handler{
		creds:             creds,
		authEnabled:       authEnabled,
		protectedPrefixes: defaultProtectedPrefixes,
		version:           cfg.App.Version,
		assets:            NewAssetRouter(cfg.Assets.Dir, logger),
		metrics:           newHTTPMetrics(),
		logger:            logger,
	}
}
