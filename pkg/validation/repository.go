// Package validation provides input validation for registry names and references.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/distribution/reference"
)

var (
	anchoredNameRegexp = regexp.MustCompile(`^` + reference.NameRegexp.String() + `$`)
	anchoredTagRegexp  = regexp.MustCompile(`^` + reference.TagRegexp.String() + `$`)
)

// ValidateRepositoryName validates a Docker repository name such as "myorg/myapp".
func ValidateRepositoryName(name string) error {
	if name == "" {
		return fmt.Errorf("repository name cannot be empty")
	}

	if len(name) > reference.NameTotalLengthMax {
		return fmt.Errorf("repository name too long: %d chars (max %d)", len(name), reference.NameTotalLengthMax)
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("repository name contains path traversal sequence")
	}

	if !anchoredNameRegexp.MatchString(name) {
		return fmt.Errorf("invalid repository name format: must contain only lowercase letters, digits, and separators (., _, -)")
	}

	return nil
}

// ValidateTag validates a Docker tag.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("tag cannot be empty")
	}

	if !anchoredTagRegexp.MatchString(tag) {
		return fmt.Errorf("invalid tag format: must start with a letter, digit or underscore and be at most 128 chars")
	}

	return nil
}
