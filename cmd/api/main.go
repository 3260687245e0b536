package main

import (
	"context"
	"os"

	"github.com/academyadmin/academy-api/internal/pkg/logger"
	"github.com/academyadmin/academy-api/internal/server"
)

// @title Academy API
// @version 1.0
// @description Administration API for academies, courses, students and enrolls

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
// @description Access token returned by POST /auth

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
