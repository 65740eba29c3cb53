package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventsphere/internal/domain"
	"eventsphere/internal/ports/output"
)

// Client is the shared HTTP layer under every API port implementation.
// It attaches the bearer token of the persisted session (when one exists),
// tags each request with an X-Request-ID, and decodes responses through the
// strict schemas in schema.go.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions output.SessionStore
}

func NewClient(baseURL string, timeout time.Duration, sessions output.SessionStore) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
	}
}

// serverError carries a non-2xx response until an endpoint wrapper maps it
// to a domain error.
type serverError struct {
	status  int
	message string
}

func (e *serverError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("server returned %d: %s", e.status, e.message)
	}
	return fmt.Sprintf("server returned %d", e.status)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session, err := c.sessions.Load(); err == nil && session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(data, &payload)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrNotAuthenticated
	case http.StatusForbidden:
		return domain.ErrNotOrganizer
	case http.StatusNotFound:
		return domain.ErrEventNotFound
	case http.StatusConflict:
		return domain.ErrEventFull
	default:
		return &serverError{status: resp.StatusCode, message: payload.Message}
	}
}

// asFetchFailed maps any error without a domain code to fetch_failed.
func asFetchFailed(err error) error {
	if err == nil || domain.Code(err) != "" {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
}

// asRsvpRejected maps any error without a domain code to rsvp_rejected.
func asRsvpRejected(err error) error {
	if err == nil || domain.Code(err) != "" {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrRsvpRejected, err)
}

// asSaveFailed maps any error without a domain code to save_toggle_failed.
func asSaveFailed(err error) error {
	if err == nil || domain.Code(err) != "" {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrSaveToggleFailed, err)
}
