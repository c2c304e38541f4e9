// Package utils provides small shared helpers: JWT token generation and
// validation, and unique identifier generation.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for locally created records.
// Identifiers are UUIDv7, so they sort by creation time, which keeps
// id-ordered listings consistent with insertion order.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh identifier. UUIDv7 generation can only fail if
// the OS random source does; a random v4 id is used as the fallback so the
// caller always receives a usable id.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
