// @title TimeWise API
// @version 1.0
// @description Backend de productividad personal: tareas, metas, modos y estadísticas.

// @contact.name Soporte TimeWise
// @contact.email soporte@timewise.app

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"timewise_backend/internal/app"
	"timewise_backend/internal/config"
	"timewise_backend/pkg/configwatcher"
	"timewise_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directorio con config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig(*configDir, application.ReloadConfig)

	application.Run()
}
