package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/loginform/internal/config"
	"github.com/nfrund/loginform/internal/logging"
	"github.com/nfrund/loginform/internal/server"
)

func main() {
	logging.New()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	s := server.New(cfg)
	s.RegisterRoutes()

	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
