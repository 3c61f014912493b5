// Package rest implements the two remote backends of the DataService
// contract against the api/teas REST surface: TypedStore exchanges bare
// tea varieties and surfaces failures as errors, EnvelopedStore
// exchanges result envelopes and never raises.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/steepworks/steeper/pkg/types"
)

// teasPath is the collection resource, resolved against the base URL.
const teasPath = "api/teas"

// client carries the state the two remote backends share: a base URL
// set once by Initialize and the HTTP client used for every call.
type client struct {
	mu   sync.Mutex
	base *url.URL
	http *http.Client
}

// initialize parses and stores the base URL. Empty or non-absolute
// locators are rejected with an ArgumentError; once a base URL is set,
// further calls are a no-op.
func (c *client) initialize(locator string) error {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return &types.ArgumentError{Param: "locator", Message: "base URL must not be empty"}
	}

	u, err := url.Parse(locator)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &types.ArgumentError{Param: "locator", Message: fmt.Sprintf("%q is not an absolute URL", locator)}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.base != nil {
		return nil
	}
	c.base = u
	return nil
}

// endpoint joins path elements onto the base URL.
func (c *client) endpoint(elem ...string) (string, error) {
	c.mu.Lock()
	base := c.base
	c.mu.Unlock()

	if base == nil {
		return "", &types.ArgumentError{Param: "locator", Message: "backend is not initialized"}
	}
	return base.JoinPath(elem...).String(), nil
}

// httpClient returns the configured HTTP client, defaulting to
// http.DefaultClient.
func (c *client) httpClient() *http.Client {
	if c.http != nil {
		return c.http
	}
	return http.DefaultClient
}

// roundTrip issues one JSON request. body is marshalled when non-nil;
// the response is returned with its body unread. Transport-level
// failures come back as TransportError with a zero status code.
func (c *client) roundTrip(ctx context.Context, method string, endpoint string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &types.TransportError{Message: fmt.Sprintf("%s %s", method, endpoint), Err: err}
	}
	return resp, nil
}

// decode drains the response body into v and closes it.
func decode(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// statusErr converts a non-2xx response into a TransportError carrying
// the status code and reason phrase. The body is closed on failure.
func statusErr(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	resp.Body.Close()
	return &types.TransportError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}

// checkID rejects non-positive identifiers before any request is made.
func checkID(id int64) error {
	if id <= 0 {
		return &types.ArgumentError{Param: "id", Message: "identifier must be positive"}
	}
	return nil
}

// itemID formats an identifier as a path segment.
func itemID(id int64) string {
	return fmt.Sprintf("%d", id)
}
