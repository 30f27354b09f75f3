// Package utils holds small helpers shared across go-pleasure-utils.
package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers, used for event bus
// subscriptions.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random UUIDv4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
