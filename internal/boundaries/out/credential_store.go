package out

import "github.com/bnema/rocker/internal/domain"

// CredentialStore defines the contract for persisting login credentials
// across CLI invocations.
type CredentialStore interface {
	// Load returns the stored credentials, or nil when none are stored.
	Load() (*domain.Credentials, error)

	// Save overwrites the store with exactly one credentials record.
	Save(creds domain.Credentials) error

	// Delete removes the stored credentials. Deleting an empty store is not an error.
	Delete() error

	// Path returns the location of the store, for display purposes.
	Path() string
}
