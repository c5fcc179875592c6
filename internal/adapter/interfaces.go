// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the note server that holds the remote replica.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the note
// server. FetchAll, Create and Update make it usable as the remote replica
// gateway of a sync pass.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the bearer token from the
	// response is stored via SetToken and the server-side user (with UserID)
	// is returned.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates user. On success the bearer token from the
	// response is stored via SetToken and the server-side user is returned.
	Login(ctx context.Context, user models.User) (models.User, error)

	// FetchAll returns every note of ownerID stored on the server.
	FetchAll(ctx context.Context, ownerID string) ([]models.Note, error)

	// Create stores a note that does not exist on the server yet. Returns
	// [ErrConflict] (wrapped) if the id is already taken.
	Create(ctx context.Context, note models.Note) error

	// Update overwrites an existing note. Returns [ErrNotFound] (wrapped) if
	// the server does not have it.
	Update(ctx context.Context, note models.Note) error

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
