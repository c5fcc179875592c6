// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// note server handlers and the client that decodes their responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place keeps both sides of the wire in agreement.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoOwnerIDProvided is returned when a notes request has no owner_id.
	MsgNoOwnerIDProvided = "no owner ID provided"

	// MsgAccessDenied is returned when the authenticated user addresses
	// notes of a different owner.
	MsgAccessDenied = "access denied"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgNoteAlreadyExists is returned when a created note id is taken.
	MsgNoteAlreadyExists = "note already exists"

	// MsgNoteNotFound is returned when an updated note does not exist for the
	// current owner.
	MsgNoteNotFound = "note not found"

	// MsgTryAgainLater is returned for transient storage failures. The
	// client retries these.
	MsgTryAgainLater = "temporarily unavailable, try again later"
)
