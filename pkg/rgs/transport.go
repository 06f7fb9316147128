package rgs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the request timeout used when no custom transport is
// supplied.
const DefaultTimeout = 30 * time.Second

// RawResponse is the transport-level result of one HTTP exchange.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Decode unmarshals the response body into v.
func (r *RawResponse) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Transport issues a single HTTP request. Implementations must return non-2xx
// responses as values, not errors; a returned error means the request itself
// could not complete (DNS failure, refused connection, timeout).
type Transport interface {
	Send(ctx context.Context, method, url string, body interface{}) (*RawResponse, error)
}

// HTTPTransport is the default Transport backed by net/http.
type HTTPTransport struct {
	Client *http.Client
}

// NewHTTPTransport creates an HTTPTransport with the given timeout. A zero
// timeout falls back to DefaultTimeout.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{
		Client: &http.Client{Timeout: timeout},
	}
}

// Send implements Transport. The body, when non-nil, is JSON-encoded and sent
// with Content-Type application/json.
func (t *HTTPTransport) Send(ctx context.Context, method, url string, body interface{}) (*RawResponse, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

func (t *HTTPTransport) httpClient() *http.Client {
	if t.Client != nil {
		return t.Client
	}
	return &http.Client{Timeout: DefaultTimeout}
}
