package main

import (
	"os"

	"github.com/lucianaf/vspotlight/internal/pkg/logger"
	"github.com/lucianaf/vspotlight/internal/server"
)

// @title V-Spotlight API
// @version 1.0
// @description API for the V-Spotlight campus events hub

// @contact.name API Support
// @contact.email support@vspotlight.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives or startup fails
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
