package clubsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an unauthenticated client for the club service. Use Login,
// Register or AdminPIN to obtain a Session for authenticated calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a club service client with sane timeouts.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates a member by DNI and password.
func (c *Client) Login(ctx context.Context, dni, password string) (*Session, error) {
	body := map[string]string{"dni": dni, "password": password}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", body)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, tok), nil
}

// Register creates a member account and returns a logged-in session.
// An empty password defaults to the DNI server-side.
func (c *Client) Register(ctx context.Context, dni, name, password string) (*Session, error) {
	body := map[string]string{"dni": dni, "name": name, "password": password}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", body)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, tok), nil
}

// AdminPIN exchanges an access PIN for an elevated session. totpCode is
// required once the super admin has enrolled an authenticator; pass ""
// otherwise. A *APIError with code "totp_required" signals enrollment.
func (c *Client) AdminPIN(ctx context.Context, pin, totpCode string) (*Session, error) {
	body := map[string]string{"pin": pin, "totp_code": totpCode}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/admin/pin", body)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, tok), nil
}

// GetConfig fetches the public application config.
func (c *Client) GetConfig(ctx context.Context) (*Config, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/config", nil)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := decodeJSON(resp, &cfg, http.StatusOK); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs an unauthenticated request with an optional JSON body.
func (c *Client) doJSON(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes a JSON response into the target, returning a typed
// *APIError when the status code is not the expected one.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkStatusNoContent returns a typed error if the response status is
// not 204 No Content.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}
