// Package session implements the login state machine on top of the credential store.
package session

import (
	"context"
	"fmt"

	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/boundaries/out"
	"github.com/bnema/rocker/internal/domain"
	"github.com/bnema/rocker/pkg/logger"
)

var _ in.SessionService = (*Service)(nil)

// Service implements the SessionService interface.
type Service struct {
	store  out.CredentialStore
	docker out.DockerCLI
	log    *logger.Logger
}

// NewService creates a new session service.
func NewService(store out.CredentialStore, docker out.DockerCLI, log *logger.Logger) *Service {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Service{
		store:  store,
		docker: docker,
		log:    log,
	}
}

// Login authenticates through docker login and stores the credentials.
// Credentials are always written; Persistent only changes what logout does.
func (s *Service) Login(ctx context.Context, req in.LoginRequest) (*domain.Session, error) {
	creds := domain.Credentials{
		Username:   req.Username,
		Password:   req.Password,
		Host:       domain.NormalizeHost(req.Host),
		Persistent: req.Persistent,
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	if err := s.docker.Login(ctx, creds.Host, creds.Username, creds.Password); err != nil {
		return nil, err
	}

	if err := s.store.Save(creds); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}

	s.log.Info("logged in", "host", creds.Host, "username", creds.Username, "persistent", creds.Persistent)
	return domain.NewSession(creds), nil
}

// Logout removes the stored credentials unless they were saved as persistent.
// Logging out without a session is not an error.
func (s *Service) Logout(_ context.Context) (in.LogoutResult, error) {
	creds, err := s.store.Load()
	if err != nil {
		return in.LogoutResult{}, err
	}
	if creds == nil {
		return in.LogoutResult{}, nil
	}

	result := in.LogoutResult{LoggedIn: true, Host: creds.Host}
	if creds.Persistent {
		s.log.Debug("persistent session kept", "path", s.store.Path())
		return result, nil
	}

	if err := s.store.Delete(); err != nil {
		return result, fmt.Errorf("failed to remove credentials: %w", err)
	}
	result.Removed = true
	s.log.Info("logged out", "host", creds.Host)
	return result, nil
}

// Open builds the session from stored credentials.
func (s *Service) Open(_ context.Context) (*domain.Session, error) {
	creds, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return domain.NewSession(*creds), nil
}
