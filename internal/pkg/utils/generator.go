package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSchemaID() string {
	return uuid.NewString()
}
