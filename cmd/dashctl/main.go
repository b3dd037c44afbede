package main

import (
	"os"

	"github.com/shenikar/climate_dashboard/internal/config"
	"github.com/shenikar/climate_dashboard/internal/repository"
	"github.com/shenikar/climate_dashboard/internal/service"
	"github.com/shenikar/climate_dashboard/pkg/logger"
)

func main() {
	cfg := &config.Config{
		LogLevel:        "warn",
		LogFormat:       "text",
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}
	log := logger.NewWithOutput(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	// Встроенный каталог без кэша и метрик
	svc := service.NewDashboardService(repository.NewFixtureCatalog(), nil, log, cfg, nil)

	if err := newRootCmd(svc).Execute(); err != nil {
		os.Exit(1)
	}
}
