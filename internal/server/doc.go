// Package server runs the HTTP server of the remote replica.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
