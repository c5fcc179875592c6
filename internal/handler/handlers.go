package handler

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/handler/http"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

// Handlers groups the transports of the note server. Only HTTP exists.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}
	logger.Info().Str("addr", cfg.HTTPAddress).Msg("notes API handlers ready")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
