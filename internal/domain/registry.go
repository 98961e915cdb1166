package domain

// ManifestV2MediaType is the media type requested when resolving a manifest digest.
const ManifestV2MediaType = "application/vnd.docker.distribution.manifest.v2+json"

// ImageReference identifies an image by repository and tag.
type ImageReference struct {
	Repository string
	Tag        string
}

// String returns the reference in repo:tag form.
func (r ImageReference) String() string {
	return r.Repository + ":" + r.Tag
}

// ErrorDetail is a single entry of the errors array returned by the registry.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}
