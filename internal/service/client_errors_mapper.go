// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

type serverAnswer struct {
	code    int
	message string
}

// serverAnswers pairs the status and body written by the server's error
// mapper with the business error they stand for.
var serverAnswers = map[serverAnswer]error{
	{http.StatusBadRequest, app.MsgInvalidDataProvided}:       ErrInvalidDataProvided,
	{http.StatusBadRequest, app.MsgNoOwnerIDProvided}:         ErrNoOwnerID,
	{http.StatusUnauthorized, app.MsgInvalidLoginPassword}:    ErrWrongPassword,
	{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}: ErrTokenIsExpiredOrInvalid,
	{http.StatusConflict, app.MsgLoginAlreadyExists}:          store.ErrLoginAlreadyExists,
	{http.StatusConflict, app.MsgNoteAlreadyExists}:           store.ErrNoteAlreadyExists,
}

// mapAdapterError turns a server answer back into the error the server
// started from. Unknown answers are returned unchanged.
func mapAdapterError(err error) error {
	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	if mapped, ok := serverAnswers[serverAnswer{statusErr.Code, statusErr.Message}]; ok {
		return mapped
	}

	switch statusErr.Code {
	case http.StatusForbidden:
		return ErrUnauthorizedAccessToDifferentOwner
	case http.StatusNotFound:
		return store.ErrNoteNotFound
	}
	return err
}
