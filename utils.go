package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validatePaymentStatus validates an operator-supplied payment status
func validatePaymentStatus(status string) error {
	switch status {
	case StatusPending, StatusPaid, StatusCanceled:
		return nil
	}
	return fmt.Errorf("payment status must be one of %s, %s, %s",
		StatusPending, StatusPaid, StatusCanceled)
}

// statusForError maps gateway errors to HTTP status codes. A failed remote
// write is a bad gateway, not an internal error: the collection has already
// been reconciled and the client can retry.
func statusForError(err error) int {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrInvalidAmount) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
