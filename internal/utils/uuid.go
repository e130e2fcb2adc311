package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for outbound requests. Version 7 UUIDs
// are preferred for their timestamp prefix; on the rare generation failure a
// random v4 UUID is used instead.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
