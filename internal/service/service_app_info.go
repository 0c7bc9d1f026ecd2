package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService exposes the configured application version. A blank
// version is a startup error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("application version is empty")
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
