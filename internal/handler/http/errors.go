// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Bearer header failures of the auth middleware. All of them end in 401.
var (
	ErrEmptyAuthorizationHeader   = errors.New("missing Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("Authorization header is not a Bearer token")
	ErrEmptyToken                 = errors.New("empty Bearer token")

	// errNoteIDMismatch is returned by PUT /api/notes/{id} when the body
	// names another note than the path.
	errNoteIDMismatch = errors.New("note id in body does not match the path")
)
