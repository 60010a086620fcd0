package devsdk

import (
	"context"
	"net/http"
)

// Register creates an account and returns a session for it.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var tok TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/users", "", req, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(tok.Token), nil
}

// Login exchanges credentials for a session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var tok TokenResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth", "", req, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(tok.Token), nil
}

// Me returns the authenticated user.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var user UserResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
