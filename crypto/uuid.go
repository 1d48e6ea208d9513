package crypto

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDString returns a new random type-4 UUID in canonical form.
func UUIDString() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return id.String(), nil
}
