package server

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

// newHTTPServer builds the notes API server. Per-request deadlines come from
// the router's timeout middleware, not from the http.Server.
func newHTTPServer(handler http.Handler, cfg config.Server) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
