// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means there is no HTTP handler or listen address to
// serve the note API on.
var errNoServersAreCreated = errors.New("no servers are created: note API handler or address is missing")
