package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is matched top to bottom; the first entry err wraps wins.
var errorStatusMap = []errorStatus{
	{store.ErrRetryable, http.StatusServiceUnavailable, app.MsgTryAgainLater},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNoOwnerID, http.StatusBadRequest, app.MsgNoOwnerIDProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrUnauthorizedAccessToDifferentOwner, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrNoteAlreadyExists, http.StatusConflict, app.MsgNoteAlreadyExists},
	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status and the message the client maps back to
// a business error.
func writeError(w http.ResponseWriter, err error) {
	status, message := statusFromError(err)
	http.Error(w, message, status)
}
