package validation

import (
	"fmt"
	"strings"

	"github.com/bnema/rocker/internal/domain"
)

// ParseImageReference parses a "repo:tag" string into an image reference.
// Exactly one ':' separator is accepted, so references carrying a registry
// port ("host:5000/app:v1") or a digest are rejected:
//   - myapp:v1          -> {myapp v1}
//   - myorg/myapp:1.0   -> {myorg/myapp 1.0}
//   - myapp             -> ErrMalformedReference
//   - myapp:v1:extra    -> ErrMalformedReference
func ParseImageReference(imageRef string) (domain.ImageReference, error) {
	if strings.Count(imageRef, ":") != 1 {
		return domain.ImageReference{}, fmt.Errorf("%w: %q", domain.ErrMalformedReference, imageRef)
	}

	repo, tag, _ := strings.Cut(imageRef, ":")
	if repo == "" || tag == "" {
		return domain.ImageReference{}, fmt.Errorf("%w: %q", domain.ErrMalformedReference, imageRef)
	}

	if err := ValidateRepositoryName(repo); err != nil {
		return domain.ImageReference{}, fmt.Errorf("%w: %v", domain.ErrMalformedReference, err)
	}
	if err := ValidateTag(tag); err != nil {
		return domain.ImageReference{}, fmt.Errorf("%w: %v", domain.ErrMalformedReference, err)
	}

	return domain.ImageReference{Repository: repo, Tag: tag}, nil
}
