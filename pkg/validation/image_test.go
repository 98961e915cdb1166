package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rocker/internal/domain"
)

func TestParseImageReference(t *testing.T) {
	tests := []struct {
		name     string
		imageRef string
		wantRepo string
		wantTag  string
	}{
		{
			name:     "simple image with tag",
			imageRef: "myimage:v1",
			wantRepo: "myimage",
			wantTag:  "v1",
		},
		{
			name:     "nested repository",
			imageRef: "myorg/myapp:1.0.0",
			wantRepo: "myorg/myapp",
			wantTag:  "1.0.0",
		},
		{
			name:     "latest tag",
			imageRef: "app_name-2:latest",
			wantRepo: "app_name-2",
			wantTag:  "latest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseImageReference(tt.imageRef)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRepo, ref.Repository)
			assert.Equal(t, tt.wantTag, ref.Tag)
			assert.Equal(t, tt.imageRef, ref.String())
		})
	}
}

func TestParseImageReference_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		imageRef string
	}{
		{name: "no separator", imageRef: "myimage"},
		{name: "two separators", imageRef: "myimage:v1:extra"},
		{name: "registry port", imageRef: "localhost:5000/myimage:v1"},
		{name: "empty tag", imageRef: "myimage:"},
		{name: "empty repository", imageRef: ":v1"},
		{name: "empty string", imageRef: ""},
		{name: "uppercase repository", imageRef: "MyImage:v1"},
		{name: "invalid tag", imageRef: "myimage:-v1"},
		{name: "path traversal", imageRef: "../etc:v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImageReference(tt.imageRef)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedReference)
		})
	}
}
