// Package credstore persists registry credentials in a local TOML file.
//
// WARNING: the password is stored in plain text. The file is created with
// 0600 permissions inside a 0700 directory, nothing more.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/rocker/internal/boundaries/out"
	"github.com/bnema/rocker/internal/domain"
	"github.com/bnema/rocker/pkg/logger"
)

const (
	// RecordVersion is the on-disk format version written by Save.
	RecordVersion = 1

	// DefaultPath is the credentials location, relative to the home directory.
	DefaultPath = "~/.rocker/credentials.toml"
)

var _ out.CredentialStore = (*FileStore)(nil)

// record is the versioned on-disk document. Pointer fields let Load tell a
// missing key from a zero value.
type record struct {
	Version     int                `toml:"version"`
	Credentials *credentialsRecord `toml:"credentials"`
}

type credentialsRecord struct {
	Host       *string `toml:"host"`
	Username   *string `toml:"username"`
	Password   *string `toml:"password"`
	Persistent *bool   `toml:"persistent"`
}

// FileStore implements CredentialStore with a single TOML file.
type FileStore struct {
	path string
	log  *logger.Logger
}

// ResolvePath expands a leading ~ and falls back to DefaultPath when path is empty.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve credentials path: %w", err)
	}
	return expanded, nil
}

// NewFileStore creates a credentials store at path (DefaultPath when empty).
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.GetLogger()
	}
	return &FileStore{path: resolved, log: log}, nil
}

// Path returns the location of the credentials file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the credentials file. A missing file yields nil credentials and
// no error; a file missing any field is reported as ErrCorruptCredentials.
func (s *FileStore) Load() (*domain.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug("no stored credentials", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var rec record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptCredentials, s.path, err)
	}

	creds, err := rec.toCredentials()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptCredentials, s.path, err)
	}

	return creds, nil
}

// Save overwrites the credentials file with a single record.
func (s *FileStore) Save(creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return fmt.Errorf("refusing to save credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := toml.Marshal(newRecord(creds))
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(s.path, 0600); err != nil {
		s.log.Warn("failed to set permissions on credentials file", "path", s.path, "error", err)
	}

	s.log.Debug("credentials stored", "path", s.path, "host", creds.Host, "persistent", creds.Persistent)

	return nil
}

// Delete removes the credentials file.
func (s *FileStore) Delete() error {
	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete credentials: %w", err)
	}

	s.log.Debug("credentials deleted", "path", s.path)

	return nil
}

func newRecord(creds domain.Credentials) record {
	return record{
		Version: RecordVersion,
		Credentials: &credentialsRecord{
			Host:       &creds.Host,
			Username:   &creds.Username,
			Password:   &creds.Password,
			Persistent: &creds.Persistent,
		},
	}
}

func (r record) toCredentials() (*domain.Credentials, error) {
	if r.Version != RecordVersion {
		return nil, fmt.Errorf("unsupported record version %d (expected %d)", r.Version, RecordVersion)
	}

	c := r.Credentials
	switch {
	case c == nil:
		return nil, fmt.Errorf("missing [credentials] section")
	case c.Host == nil:
		return nil, fmt.Errorf("missing host")
	case c.Username == nil:
		return nil, fmt.Errorf("missing username")
	case c.Password == nil:
		return nil, fmt.Errorf("missing password")
	case c.Persistent == nil:
		return nil, fmt.Errorf("missing persistent")
	}

	creds := &domain.Credentials{
		Host:       *c.Host,
		Username:   *c.Username,
		Password:   *c.Password,
		Persistent: *c.Persistent,
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return creds, nil
}
