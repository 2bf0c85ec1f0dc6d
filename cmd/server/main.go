package main

import (
	"fmt"

	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/config"
	httphandler "github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/handler/http"
	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/logger"
	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("edge-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// The config carries the Basic Auth credential pair, so it is never
	// logged wholesale.
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("assets_dir", cfg.Assets.Dir).
		Msg("received configs")

	handler := httphandler.NewHandler(cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
