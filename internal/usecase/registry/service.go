// Package registry implements the session-scoped registry use cases.
package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/opencontainers/go-digest"

	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/boundaries/out"
	"github.com/bnema/rocker/internal/domain"
	"github.com/bnema/rocker/pkg/logger"
	"github.com/bnema/rocker/pkg/validation"
)

var _ in.RegistryService = (*Service)(nil)

// Service implements the RegistryService interface.
type Service struct {
	client out.RegistryClient
	log    *logger.Logger
}

// NewService creates a new registry service.
func NewService(client out.RegistryClient, log *logger.Logger) *Service {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Service{client: client, log: log}
}

// Ping checks that the session host answers the v2 API.
func (s *Service) Ping(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return domain.ErrNotAuthenticated
	}
	if err := s.client.Ping(ctx, session.Host(), session.Token()); err != nil {
		return fmt.Errorf("failed to ping registry: %w", err)
	}
	return nil
}

// Catalog lists the repositories of the session host.
func (s *Service) Catalog(ctx context.Context, session *domain.Session) ([]string, error) {
	if session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	repos, err := s.client.ListCatalog(ctx, session.Host(), session.Token())
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	return repos, nil
}

// Tags lists the tags of repo, ordered as requested.
func (s *Service) Tags(ctx context.Context, session *domain.Session, repo string, order in.TagOrder) ([]string, error) {
	if session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validation.ValidateRepositoryName(repo); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRepository, err)
	}

	tags, err := s.client.ListTags(ctx, session.Host(), session.Token(), repo)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for %s: %w", repo, err)
	}

	switch order {
	case "", in.TagOrderNone:
		return tags, nil
	case in.TagOrderSemver:
		return SortTags(tags), nil
	default:
		return nil, fmt.Errorf("unknown tag order %q", order)
	}
}

// Delete resolves the manifest digest of ref and deletes it.
func (s *Service) Delete(ctx context.Context, session *domain.Session, ref domain.ImageReference) (digest.Digest, error) {
	if session == nil {
		return "", domain.ErrNotAuthenticated
	}

	d, err := s.client.DeleteImage(ctx, session.Host(), session.Token(), ref.Repository, ref.Tag)
	if err != nil {
		return "", fmt.Errorf("failed to delete %s: %w", ref, err)
	}

	s.log.Info("image deleted", "image", ref.String(), "digest", d.String())
	return d, nil
}

// SortTags returns a copy of tags with semver tags first, highest version
// first, followed by the remaining tags in descending lexical order.
func SortTags(tags []string) []string {
	type versioned struct {
		tag     string
		version *semver.Version
	}

	var semverTags []versioned
	var otherTags []string
	for _, tag := range tags {
		v, err := semver.NewVersion(tag)
		if err != nil {
			otherTags = append(otherTags, tag)
			continue
		}
		semverTags = append(semverTags, versioned{tag: tag, version: v})
	}

	// Latest first; equal versions fall back to the tag text
	sort.SliceStable(semverTags, func(i, j int) bool {
		if cmp := semverTags[i].version.Compare(semverTags[j].version); cmp != 0 {
			return cmp > 0
		}
		return semverTags[i].tag > semverTags[j].tag
	})
	sort.Sort(sort.Reverse(sort.StringSlice(otherTags)))

	sorted := make([]string, 0, len(tags))
	for _, st := range semverTags {
		sorted = append(sorted, st.tag)
	}
	return append(sorted, otherTags...)
}
