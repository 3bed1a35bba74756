package service

import (
	"context"

	"github.com/MKhiriev/go-film-keeper/internal/logger"
	"github.com/MKhiriev/go-film-keeper/models"
)

const devVersion = "dev"

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns the build metadata service.
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{info: info, logger: logger}
}

// GetAppVersion reports "dev" for builds without a version stamp.
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	if !s.info.Released() {
		return devVersion
	}
	return s.info.Version
}
