package main

import (
	"os"

	"github.com/sandesh/institutecrm/internal/pkg/logger"
	"github.com/sandesh/institutecrm/internal/server"
)

// @title Institute CRM API
// @version 1.0
// @description Role-based CRM for a training institute: inquiries, batches, students, fees, attendance and placement outreach

// @host localhost:8080
// @BasePath /api
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

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
