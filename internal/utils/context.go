// Package utils holds small helpers shared by the server and the client:
// the owner id context key, JSON request and response helpers, the resty
// client constructor, JWT issuing and parsing, and UUID generation.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey carries the authenticated owner id of a server request.
var OwnerIDCtxKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// GetOwnerIDFromContext reports false when the owner id is missing, empty
// or not a string.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	return ownerID, ok && ownerID != ""
}
