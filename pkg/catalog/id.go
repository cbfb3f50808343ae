package catalog

import "github.com/google/uuid"

// IDGenerator produces ids for new books.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator returns random (version 4) UUIDs in their canonical text form.
type UUIDGenerator struct{}

func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}
