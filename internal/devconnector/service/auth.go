package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/domain"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store"
	"github.com/aussiebroadwan/devconnector/pkg/cryptox"
	"github.com/aussiebroadwan/devconnector/pkg/idx"
	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/aussiebroadwan/devconnector/pkg/slogx"
)

// AuthService registers users, checks their credentials and mints the bearer
// tokens the rest of the API is gated on.
type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer
	TTL    time.Duration

	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultTokenTTL
}

// Register creates a user and returns a token for them. A taken email
// yields ErrUserExists and leaves the existing record alone.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	l := slogx.FromContext(ctx)
	email = domain.NormalizeEmail(email)

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return "", ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return "", fmt.Errorf("lookup user: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", err
	}

	now := s.now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Avatar:       cryptox.GravatarURL(email),
		CreatedAt:    now,
	}

	// The unique index catches a concurrent registration that slipped past
	// the lookup above.
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	l.Info("user registered", "user_id", u.ID)
	return s.issue(u.ID, now)
}

// Login checks the credentials and returns a fresh token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Debug("login for unknown email")
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Debug("login with wrong password", "user_id", u.ID)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return s.issue(u.ID, s.now())
}

// Me returns the user a token was issued for.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *AuthService) issue(userID string, now time.Time) (string, error) {
	token, err := s.Signer.Sign(jwtx.NewClaims(userID, s.ttl(), now))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
