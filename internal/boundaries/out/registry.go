package out

import (
	"context"

	"github.com/opencontainers/go-digest"
)

// RegistryClient defines the contract for talking to a Docker Registry v2 API.
// Every call is authenticated with a basic auth token.
type RegistryClient interface {
	// Ping checks that the registry answers on /v2/.
	Ping(ctx context.Context, host, token string) error

	// ListCatalog returns the repositories of the registry in API order.
	ListCatalog(ctx context.Context, host, token string) ([]string, error)

	// ListTags returns the tags of a repository in API order.
	ListTags(ctx context.Context, host, token, repo string) ([]string, error)

	// DeleteImage resolves the manifest digest of repo:tag and deletes it.
	DeleteImage(ctx context.Context, host, token, repo, tag string) (digest.Digest, error)
}
