package clubsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Session is an authenticated handle on the club service. Sessions are
// safe for concurrent use; the token is immutable once issued.
type Session struct {
	client *Client

	token     string
	tier      string
	name      string
	expiresAt time.Time
}

func newSession(c *Client, tok TokenResponse) *Session {
	return &Session{
		client:    c,
		token:     tok.Token,
		tier:      tok.Tier,
		name:      tok.Name,
		expiresAt: time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
	}
}

// Token returns the raw bearer token, e.g. for wiring an SSE consumer.
func (s *Session) Token() string { return s.token }

// Tier returns the privilege level this session was issued with.
func (s *Session) Tier() string { return s.tier }

// Name returns the member's display name ("" for admin sessions).
func (s *Session) Name() string { return s.name }

// Expired reports whether the token lifetime has elapsed.
func (s *Session) Expired() bool { return time.Now().After(s.expiresAt) }

// Logout invalidates the session server-side where supported. The token
// is stateless, so this mainly exists for symmetry and audit logging.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// doAuthJSON performs an authenticated request with an optional JSON body.
func (s *Session) doAuthJSON(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}
