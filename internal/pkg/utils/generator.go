package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateWizardID() string {
	return uuid.New().String()
}

// IsValidUUID is used to tell a client supplied X-Request-ID apart from noise.
func IsValidUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
