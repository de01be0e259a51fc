package utils

import (
	"shrm-web/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// IsValidSessionID reports whether id has the shape GenerateSessionID produces.
func IsValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
