package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// staticAppInfo answers with the version fixed at startup.
type staticAppInfo struct {
	version string
}

// NewAppInfoService returns ErrVersionIsNotSpecified for a blank cfg.Version.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("serving app version")
	return staticAppInfo{version: version}, nil
}

func (s staticAppInfo) GetAppVersion(context.Context) string {
	return s.version
}
