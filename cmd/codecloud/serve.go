package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codecloud/internal/api"
	"codecloud/internal/config"
	"codecloud/internal/scan"
)

// serve runs the HTTP server until a shutdown signal arrives.
func serve(cfg *config.Config, engine *scan.Engine, logger *slog.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := api.NewServer(addr, cfg.AssetsPath(), engine, logger)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("Serving code cloud UI at http://%s\n", addr)
		fmt.Println("Press Ctrl+C to stop.")
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error", "error", err.Error())
			return err
		}
	case sig := <-shutdown:
		logger.Info("Received shutdown signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during shutdown", "error", err.Error())
			return err
		}

		logger.Info("Server stopped gracefully")
	}

	return nil
}
