package in

import (
	"context"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/rocker/internal/domain"
)

// TagOrder selects how tags are ordered before being displayed.
type TagOrder string

const (
	// TagOrderNone keeps the order returned by the registry.
	TagOrderNone TagOrder = "none"
	// TagOrderSemver puts semver tags first, highest version first.
	TagOrderSemver TagOrder = "semver"
)

// RegistryService defines the contract for session-scoped registry operations.
type RegistryService interface {
	Ping(ctx context.Context, session *domain.Session) error
	Catalog(ctx context.Context, session *domain.Session) ([]string, error)
	Tags(ctx context.Context, session *domain.Session, repo string, order TagOrder) ([]string, error)
	Delete(ctx context.Context, session *domain.Session, ref domain.ImageReference) (digest.Digest, error)
}
