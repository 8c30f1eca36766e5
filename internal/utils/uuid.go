package utils

import "github.com/google/uuid"

// UUIDGenerator issues entry and trace IDs. The zero value is ready to use.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7. IDs issued by one process sort in issue order,
// which keeps entries created offline in creation order on the server.
// Falls back to a random UUIDv4 when the v7 clock cannot be read.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
