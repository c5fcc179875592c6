// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the note client application.
//
// [App] wires the local SQLite replica, the HTTP adapter of the server and
// the client services, and exposes one method per CLI command. Sync runs a
// single pass with progress output, Daemon keeps running passes in the
// background until its context is cancelled.
package client
