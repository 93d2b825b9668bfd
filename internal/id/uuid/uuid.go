// Package uuid generates request identifiers.
package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates time-ordered UUIDv7 strings and implements
// analyzer.IDGenerator.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// NewID returns a UUIDv7 string.
func (Generator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid7: %w", err)
	}
	return id.String(), nil
}

// Accept reports whether a caller-supplied request ID is a well-formed
// UUID and may be propagated instead of minting a new one.
func Accept(candidate string) bool {
	if candidate == "" || len(candidate) > 64 {
		return false
	}
	_, err := uuid.Parse(candidate)
	return err == nil
}
