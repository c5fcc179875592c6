// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress stops the server at startup: without a listen address
// there is nothing to serve the notes API on.
var errNoHTTPAddress = errors.New("server http address is empty")
