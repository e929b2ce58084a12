package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"slotmatch/internal/app"
	"slotmatch/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if err := app.Run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
