package main

import (
	"github.com/k4rimDev/catalog-api/config"
	"github.com/k4rimDev/catalog-api/internal/app"
	"github.com/k4rimDev/catalog-api/pkg/logger"
)

func main() {
	cfg := config.Get()

	log := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
	})

	app.Run(cfg, log)
}
