// Package anki implements a client for the AnkiConnect HTTP API.
// AnkiConnect is an Anki add-on (code 2055492159) that exposes the running
// desktop application on a local port. Every call is a single synchronous
// POST of a JSON envelope {action, params, version} to the base URL; the
// response is {result, error}. The client is stateless and safe to discard
// after use.
package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// ProtocolVersion is the AnkiConnect API version sent with every request.
	ProtocolVersion = 6

	// DefaultEndpoint is where AnkiConnect listens out of the box.
	DefaultEndpoint = "http://127.0.0.1:8765"

	defaultTimeout = 10 * time.Second
)

// Client talks to a single AnkiConnect endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL. An empty URL selects
// DefaultEndpoint; a bare host:port is promoted to http. A non-positive
// timeout selects the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(trimmed, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the endpoint this client posts to.
func (c *Client) BaseURL() string { return c.baseURL }

// request is the AnkiConnect request envelope.
type request struct {
	Action  string `json:"action"`
	Params  any    `json:"params"`
	Version int    `json:"version"`
}

// envelope is the AnkiConnect response wrapper. Exactly one of the two
// fields is meaningful, but the add-on always sends both.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// Invoke sends the named action with params and decodes the result value
// into out. Pass nil params for actions without parameters and nil out to
// discard the result. A null result with a nil out, or with any out, is
// success with no decode.
//
// Failures are classified: *TransportError when the endpoint cannot be
// reached or does not produce a parseable envelope, *RemoteError when the
// add-on itself rejects the request.
func (c *Client) Invoke(ctx context.Context, action string, params, out any) error {
	raw, err := c.InvokeRaw(ctx, action, params)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Err: fmt.Errorf("decode %s result: %w", action, err)}
	}
	return nil
}

// InvokeRaw is Invoke without result decoding; it returns the raw JSON of
// the envelope's result field, which may be nil or the literal null.
func (c *Client) InvokeRaw(ctx context.Context, action string, params any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}
	// Params that cannot serialize never reach the wire; classify like any
	// other failure to produce a valid exchange, so callers only ever see
	// the two error kinds.
	body, err := json.Marshal(request{Action: action, Params: params, Version: ProtocolVersion})
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("encode %s request: %w", action, err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Err: fmt.Errorf("endpoint returned status %d", resp.StatusCode)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if env.Error != nil && *env.Error != "" {
		return nil, &RemoteError{Message: *env.Error}
	}
	return env.Result, nil
}
