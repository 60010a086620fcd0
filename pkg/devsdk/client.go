package devsdk

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

// TokenHeader is the request header carrying the bearer token.
const TokenHeader = "x-auth-token"

// SDKClient talks to a devconnector server. It performs anonymous calls
// itself and hands out Sessions for authenticated ones.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the server at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated view of the API. Tokens cannot be refreshed;
// once expired, log in again.
type Session struct {
	client *SDKClient
	token  string
}

// NewSession wraps an existing token.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// Token returns the bearer token the session presents.
func (s *Session) Token() string { return s.token }

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// do sends a JSON request and decodes a JSON answer into out (when non-nil).
// An empty token sends the request anonymously.
func (c *SDKClient) do(ctx context.Context, method, path, token string, in, out any, expectedStatus int) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeJSON(resp, out, expectedStatus)
}

func (s *Session) do(ctx context.Context, method, path string, in, out any) error {
	return s.client.do(ctx, method, path, s.token, in, out, http.StatusOK)
}

// decodeJSON decodes a JSON response into the target.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
