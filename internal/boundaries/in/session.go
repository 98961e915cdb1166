package in

import (
	"context"

	"github.com/bnema/rocker/internal/domain"
)

// LoginRequest carries the values collected by the login command.
type LoginRequest struct {
	Username   string
	Password   string
	Host       string
	Persistent bool
}

// LogoutResult reports what logout did with the stored credentials.
type LogoutResult struct {
	LoggedIn bool
	Removed  bool
	Host     string
}

// SessionService defines the contract for the login state machine.
type SessionService interface {
	Login(ctx context.Context, req LoginRequest) (*domain.Session, error)
	Logout(ctx context.Context) (LogoutResult, error)
	// Open returns the current session or domain.ErrNotAuthenticated.
	Open(ctx context.Context) (*domain.Session, error)
}
