// Package authclient talks to the external authentication backend.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/nfrund/loginform/internal/domain"
)

// DefaultEndpoint is used when no endpoint is configured.
const DefaultEndpoint = "http://localhost:5000/api/users/login"

// Client posts credentials to a fixed endpoint. It makes exactly one attempt
// per call and sets no timeout of its own; the caller's context is the only
// way to abandon a request.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the given endpoint.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

// Authenticate implements domain.Authenticator.
//
// The response body is decoded before the status code is looked at, so an
// unreadable body is a transport failure even on a non-2xx status.
func (c *Client) Authenticate(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal credentials: %v", domain.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response (status %d): %v", domain.ErrTransport, resp.StatusCode, err)
	}

	// Unmarshal rejects trailing data after the first value.
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response (status %d): %v", domain.ErrTransport, resp.StatusCode, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: null response body (status %d)", domain.ErrTransport, resp.StatusCode)
	}

	// Non-object bodies decode fine but carry no fields.
	fields, _ := payload.(map[string]any)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.AuthError{StatusCode: resp.StatusCode, Message: messageText(fields["message"])}
	}

	return &domain.AuthResult{Name: scalarText(fields["name"])}, nil
}

// scalarText renders a JSON scalar as text. Strings pass through, numbers
// and booleans are formatted; null, objects and arrays give "".
func scalarText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// messageText is scalarText for the rejection message, except that falsy
// values (0, false, "") count as no message so the default text is shown.
func messageText(v any) string {
	switch v := v.(type) {
	case float64:
		if v == 0 {
			return ""
		}
	case bool:
		if !v {
			return ""
		}
	}
	return scalarText(v)
}
