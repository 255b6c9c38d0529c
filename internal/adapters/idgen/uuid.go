package idgen

import (
	"github.com/google/uuid"

	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type uuidGenerator struct{}

// NewUUIDGenerator returns a generator of random (version 4) UUID strings.
func NewUUIDGenerator() ports.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}
