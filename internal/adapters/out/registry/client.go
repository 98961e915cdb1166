// Package registry provides an HTTP client for the Docker Registry v2 API.
package registry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/rocker/internal/boundaries/out"
	"github.com/bnema/rocker/internal/domain"
	"github.com/bnema/rocker/pkg/logger"
)

const (
	// StatusManifestDeleted is the status the registry protocol returns for a
	// successful manifest deletion.
	StatusManifestDeleted = http.StatusAccepted

	// HeaderContentDigest carries the manifest digest on manifest responses.
	HeaderContentDigest = "Docker-Content-Digest"
)

var _ out.RegistryClient = (*Client)(nil)

// Client is an HTTP client for a Docker Registry v2 endpoint.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	hasTimeout bool
	userAgent  string
	log        *logger.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// NewClient creates a new registry client. Requests have no timeout unless
// WithTimeout or WithHTTPClient says otherwise. WithTimeout applies to a copy
// of the HTTP client, whatever the option order.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		log:        logger.GetLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.hasTimeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
		c.hasTimeout = true
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *logger.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// Ping checks that the registry answers on the v2 base endpoint.
func (c *Client) Ping(ctx context.Context, host, token string) error {
	_, err := c.do(ctx, host, request{
		kind:   KindGet,
		path:   "/v2/",
		token:  token,
		expect: http.StatusOK,
	})
	return err
}

// ListCatalog returns the repositories of the registry in API order.
func (c *Client) ListCatalog(ctx context.Context, host, token string) ([]string, error) {
	resp, err := c.do(ctx, host, request{
		kind:   KindGet,
		path:   "/v2/_catalog",
		token:  token,
		expect: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Repositories []string `json:"repositories"`
	}
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}

	if result.Repositories == nil {
		return []string{}, nil
	}
	return result.Repositories, nil
}

// ListTags returns the tags of a repository in API order.
func (c *Client) ListTags(ctx context.Context, host, token, repo string) ([]string, error) {
	resp, err := c.do(ctx, host, request{
		kind:   KindGet,
		path:   "/v2/" + repo + "/tags/list",
		token:  token,
		expect: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Tags []string `json:"tags"`
	}
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}

	if result.Tags == nil {
		return []string{}, nil
	}
	return result.Tags, nil
}

// ResolveDigest returns the manifest digest of repo:tag. HEAD is used so the
// manifest body is never transferred.
func (c *Client) ResolveDigest(ctx context.Context, host, token, repo, tag string) (digest.Digest, error) {
	resp, err := c.do(ctx, host, request{
		kind:   KindHead,
		path:   "/v2/" + repo + "/manifests/" + tag,
		token:  token,
		header: http.Header{"Accept": []string{domain.ManifestV2MediaType}},
		expect: http.StatusOK,
	})
	if err != nil {
		return "", err
	}

	value := resp.Header.Get(HeaderContentDigest)
	if value == "" {
		return "", fmt.Errorf("%w for %s:%s", domain.ErrDigestUnavailable, repo, tag)
	}

	d := digest.Digest(value)
	if err := d.Validate(); err != nil {
		c.log.Warn("registry returned a non-canonical digest", "digest", value, "error", err)
	}

	return d, nil
}

// DeleteManifest deletes the manifest identified by digest. The registry
// answers 202 on success; an errors array in the body is a failure even then.
func (c *Client) DeleteManifest(ctx context.Context, host, token, repo string, d digest.Digest) error {
	resp, err := c.do(ctx, host, request{
		kind:   KindDelete,
		path:   "/v2/" + repo + "/manifests/" + d.String(),
		token:  token,
		expect: StatusManifestDeleted,
	})
	if err != nil {
		return err
	}

	var result struct {
		Errors []domain.ErrorDetail `json:"errors"`
	}
	if err := resp.Decode(&result); err != nil {
		c.log.Warn("ignoring unreadable delete response body", "error", err)
		return nil
	}

	if len(result.Errors) > 0 {
		first := result.Errors[0]
		return &domain.RegistryError{Code: first.Code, Message: first.Message}
	}

	return nil
}

// DeleteImage resolves the digest of repo:tag and deletes that manifest.
// No DELETE is sent when the digest cannot be resolved.
func (c *Client) DeleteImage(ctx context.Context, host, token, repo, tag string) (digest.Digest, error) {
	d, err := c.ResolveDigest(ctx, host, token, repo, tag)
	if err != nil {
		return "", err
	}

	if err := c.DeleteManifest(ctx, host, token, repo, d); err != nil {
		return "", err
	}

	return d, nil
}
