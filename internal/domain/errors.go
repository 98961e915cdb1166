package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Registry errors
	ErrDigestUnavailable = errors.New("unable to retrieve manifest digest")

	// Precondition errors
	ErrDockerNotFound   = errors.New("docker executable not found in PATH")
	ErrNotAuthenticated = errors.New("not logged in, run 'rocker login' first")

	// Input errors
	ErrMalformedReference = errors.New("malformed image reference, expected <repo_name>:<tag>")
	ErrInvalidRepository  = errors.New("invalid repository name")

	// Credentials errors
	ErrCorruptCredentials = errors.New("credentials file is corrupt")
)

// HTTPError is returned when the registry answers with an unexpected status.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	if e.Body == "" {
		return status
	}
	return fmt.Sprintf("%s: %s", status, e.Body)
}

// RegistryError is an error reported by the registry in a response body,
// even though the status code signalled success.
type RegistryError struct {
	Code    string
	Message string
}

func (e *RegistryError) Error() string {
	return e.Code + " -> " + e.Message
}
