package main

import (
	"log"

	"github.com/unipath/counsel-svc/config"
	"github.com/unipath/counsel-svc/internal/api"
	"github.com/unipath/counsel-svc/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	lg, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer lg.Sync()

	api.StartServer(cfg, lg)
}
