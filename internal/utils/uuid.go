package utils

import "github.com/google/uuid"

// UUIDGenerator hands out note and user ids. UUIDv7 ids sort by creation
// time, which keeps the notes primary key index append-only.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7, or a random UUIDv4 if v7 generation fails.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
