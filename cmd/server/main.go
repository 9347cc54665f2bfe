package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-storefront-demo/internal/config"
	"github.com/MKhiriev/go-storefront-demo/internal/handler"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/internal/server"
	"github.com/MKhiriev/go-storefront-demo/internal/service"
	"github.com/MKhiriev/go-storefront-demo/internal/store"
	"github.com/MKhiriev/go-storefront-demo/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("storefront-server")

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Bool("signed_tokens", cfg.App.TokenSignKey != "").Msg("received configs")

	storages := store.NewStorages(log)
	services := service.NewServices(storages, cfg.App, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
