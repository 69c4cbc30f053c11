package main

import (
	"github.com/osse101/HabitInventory_Go/internal/config"
	"github.com/osse101/HabitInventory_Go/internal/logger"
)

// initLogger initializes the logger from app configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))
}
