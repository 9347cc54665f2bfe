package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-storefront-demo/internal/adapter"
	"github.com/MKhiriev/go-storefront-demo/internal/client"
	"github.com/MKhiriev/go-storefront-demo/internal/config"
	"github.com/MKhiriev/go-storefront-demo/internal/logger"
	"github.com/MKhiriev/go-storefront-demo/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("storefront-client")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if len(cfg.Args) == 0 {
		fmt.Fprintln(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		fmt.Fprintf(os.Stderr, "usage: storefront-client [flags] <command> [args]\n\ncommands:\n%s", client.Usage())
		os.Exit(2)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app := client.NewApp(serverAdapter, os.Stdout, log)
	if err = app.Run(context.Background(), cfg.Args); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
