package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"codecloud/internal/slogutil"
)

func main() {
	// .env is optional; CODECLOUD_* variables override config keys.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		logger := slogutil.NewLogger(os.Stderr, slog.LevelInfo)
		logger.Error("Command execution failed", "error", err.Error())
		os.Exit(1)
	}
}
