package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-film-keeper/internal/adapter"
	"github.com/MKhiriev/go-film-keeper/internal/client"
	"github.com/MKhiriev/go-film-keeper/internal/config"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/service"
	"github.com/MKhiriev/go-film-keeper/internal/store"
	"github.com/MKhiriev/go-film-keeper/models"
)

const role = "go-film-keeper"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	log := logger.NewClientLogger(role, "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Log.File != "" {
		log = logger.NewClientLogger(role, cfg.Log.File)
	}
	log = log.WithLevelName(cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	movieAdapter, err := adapter.NewHTTPMovieAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create movie adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, movieAdapter, info, log)

	app, err := client.NewApp(cfg, services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
