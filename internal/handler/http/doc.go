// Package http implements the HTTP transport layer of the application.
//
// It serves the remote replica of the notes: registration and login, the
// owner-scoped note endpoints used by the client sync engine and the version
// endpoint. Authentication, request tracing, access logging and response
// compression are handled here before requests reach the service layer.
package http
