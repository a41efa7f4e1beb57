package main

import (
	"github.com/Elite747/ValhallaLootList-sub000/internal/config"
	"github.com/Elite747/ValhallaLootList-sub000/internal/logger"
)

// initLogger initializes the logger using centralized app configuration.
// Source locations are always attached in development.
func initLogger(cfg *config.Config) {
	loggerConfig := cfg.LoggerConfig()
	if loggerConfig.IsDevelopment() {
		loggerConfig.AddSource = true
	}

	logger.InitLogger(loggerConfig)
}
