// Package api is the thin client for the finance tracker's REST backend:
// bearer-token auth, JSON parsing, and error normalization. The server owns
// all transaction and category persistence; this client never caches beyond
// the caller's hands.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Error is a normalized non-2xx API response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// IsUnauthorized reports whether err is an HTTP 401 response. Callers route
// this to session teardown rather than per-call error display.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Client talks to one backend base URL with one token store.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  *TokenStore
	log     zerolog.Logger
}

// NewClient creates a Client. baseURL includes the API prefix, e.g.
// "http://localhost:8000/api/v1".
func NewClient(baseURL string, timeout time.Duration, tokens *TokenStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// request performs one API call. body is JSON-marshaled when non-nil; a 2xx
// JSON payload is unmarshaled into out when out is non-nil. Non-2xx
// responses come back as *Error with a single human-readable message.
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var payload bytes.Buffer
	if _, err := payload.ReadFrom(resp.Body); err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Status:  resp.StatusCode,
			Message: normalizeMessage(payload.Bytes()),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload.Bytes(), out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

const fallbackMessage = "Request failed"

// normalizeMessage extracts a single readable message from an error body.
// The backend sends either {"detail": "..."} or {"detail": [{"msg": "..."}]}
// for validation errors; some proxies send {"message": "..."}.
func normalizeMessage(payload []byte) string {
	var probe struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return fallbackMessage
	}

	if len(probe.Detail) > 0 {
		var single string
		if err := json.Unmarshal(probe.Detail, &single); err == nil && single != "" {
			return single
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(probe.Detail, &items); err == nil && len(items) > 0 {
			msgs := make([]string, len(items))
			for i, item := range items {
				if item.Msg == "" {
					msgs[i] = "Invalid input"
				} else {
					msgs[i] = item.Msg
				}
			}
			return strings.Join(msgs, ", ")
		}
	}
	if probe.Message != "" {
		return probe.Message
	}
	return fallbackMessage
}
