package service

import "context"

// StaticOwner is an OwnerResolver that always yields the same owner id.
type StaticOwner string

// OwnerID implements OwnerResolver.
func (o StaticOwner) OwnerID(context.Context) (string, error) {
	return string(o), nil
}
