// Package domain contains pure business types without external dependencies.
package domain

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// Credentials holds what is needed to talk to a registry.
type Credentials struct {
	Username   string
	Password   string
	Host       string
	Persistent bool
}

// Token returns the basic auth token, base64(username:password).
func (c Credentials) Token() string {
	return base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
}

// Validate checks that every field is present and the host is an absolute http(s) URL.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return ValidateHost(c.Host)
}

// ValidateHost checks that host is an absolute http or https URL.
func ValidateHost(host string) error {
	if host == "" {
		return fmt.Errorf("host is required")
	}
	u, err := url.Parse(host)
	if err != nil {
		return fmt.Errorf("invalid host %q: %w", host, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid host %q: scheme must be http or https", host)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid host %q: missing hostname", host)
	}
	return nil
}

// NormalizeHost trims whitespace and trailing slashes from a registry URL.
func NormalizeHost(host string) string {
	return strings.TrimRight(strings.TrimSpace(host), "/")
}

// Session is the authenticated context of a single CLI invocation.
// It is built once from the credential store and handed to each command.
type Session struct {
	Credentials Credentials
}

// NewSession creates a session for the given credentials.
func NewSession(creds Credentials) *Session {
	return &Session{Credentials: creds}
}

// Host returns the registry URL of the session.
func (s *Session) Host() string {
	return s.Credentials.Host
}

// Token returns the basic auth token of the session.
func (s *Session) Token() string {
	return s.Credentials.Token()
}
