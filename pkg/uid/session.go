package uid

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateSessionID returns a random (version 4) UUID string for a game session.
func GenerateSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	return id.String(), nil
}
