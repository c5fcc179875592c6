// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// A known path requested with a wrong method is answered with 404, the same
// as an unknown path, so note routes are not enumerable by method probing.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not allowed for route")

	http.NotFound(w, r)
}
