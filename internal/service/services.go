package service

import (
	"github.com/MKhiriev/go-film-keeper/internal/adapter"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/internal/store"
	"github.com/MKhiriev/go-film-keeper/models"
)

// ClientServices groups the services handed to the background tasks and the
// UI.
type ClientServices struct {
	MovieService   MovieService
	AppInfoService AppInfoService
}

// NewClientServices wires the services over the local storages and the movie
// adapter.
func NewClientServices(storages *store.ClientStorages, movieAdapter adapter.MovieAdapter, info models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		MovieService:   NewMovieService(storages.FilmRepository, movieAdapter, logger),
		AppInfoService: NewAppInfoService(info, logger),
	}
}
