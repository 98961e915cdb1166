package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/rocker/internal/domain"
)

// maxBodySize bounds how much of a response body is kept in memory.
const maxBodySize = 4 << 20

// ErrResponseTooLarge is returned when a response body exceeds maxBodySize.
var ErrResponseTooLarge = errors.New("registry response too large")

// RequestKind enumerates the HTTP requests the client is allowed to issue.
type RequestKind int

const (
	KindGet RequestKind = iota + 1
	KindHead
	KindDelete
)

// Method returns the HTTP verb of the request kind.
// An unknown kind is a programming error and panics.
func (k RequestKind) Method() string {
	switch k {
	case KindGet:
		return http.MethodGet
	case KindHead:
		return http.MethodHead
	case KindDelete:
		return http.MethodDelete
	default:
		panic(fmt.Sprintf("registry: unknown request kind %d", int(k)))
	}
}

func (k RequestKind) String() string {
	return k.Method()
}

// request describes a single authenticated call to the registry.
type request struct {
	kind   RequestKind
	path   string
	token  string
	header http.Header
	expect int
}

// Response is the typed result of a registry call whose status matched.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into target. An empty body decodes as an
// empty object and leaves target untouched.
func (r *Response) Decode(target any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// do performs the HTTP call and checks the status against the expected one.
func (c *Client) do(ctx context.Context, host string, req request) (*Response, error) {
	url := domain.NormalizeHost(host) + req.path
	method := req.kind.Method()

	httpReq, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Basic "+req.token)
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	for key, values := range req.header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	c.log.Debug("registry request", "method", method, "url", url)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%w: %s %s exceeds %d bytes", ErrResponseTooLarge, method, url, maxBodySize)
	}

	c.log.Debug("registry response", "method", method, "url", url, "status", resp.StatusCode)

	if resp.StatusCode != req.expect {
		return nil, &domain.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
