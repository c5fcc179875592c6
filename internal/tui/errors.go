// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// ErrSyncInterrupted is returned by Sync when the user cancels the pass
// before it reports a result.
var ErrSyncInterrupted = errors.New("sync interrupted")

// HumanizeError prefixes network failures with a hint that the note server
// could not be reached. Other messages are kept as they are.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}
	if isUnreachable(err) {
		return "server is unreachable: " + err.Error()
	}
	return err.Error()
}

func isUnreachable(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	return errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, context.DeadlineExceeded)
}
