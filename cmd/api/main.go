package main

import (
	"flag"
	"os"

	"github.com/yigit/schooladmin/internal/pkg/logger"
	"github.com/yigit/schooladmin/internal/server"
)

// @title School Admin API
// @version 1.0
// @description Administration API for departments, roles, employees, students and courses

// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	// NewServer wires every dependency, including storage and the router
	srv, err := server.NewServer(*configPath)
	if err != nil {
		// The logger package's init provides a usable default logger here
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until SIGINT/SIGTERM and then shuts down gracefully
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
