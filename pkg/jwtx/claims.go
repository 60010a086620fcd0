package jwtx

import (
	"time"

	"github.com/aussiebroadwan/devconnector/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid when the service
// is not configured otherwise (100 hours).
const DefaultTokenTTL = 360000 * time.Second

// UserClaim is the nested identity object carried in every token.
type UserClaim struct {
	ID string `json:"id"`
}

// Claims are the token claims issued on login and registration. The user id
// is carried both as the nested "user.id" field and as the standard "sub"
// claim so either style of consumer can read it.
type Claims struct {
	jwt.RegisteredClaims

	User UserClaim `json:"user"`
}

// NewClaims builds claims for the given user, valid from now until now+ttl.
// Each call gets a fresh jti, so two tokens issued within the same second
// still differ.
func NewClaims(userID string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        idx.NewAt(now).String(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		User: UserClaim{ID: userID},
	}
}

// UserID resolves the identity the token was issued for.
func (c *Claims) UserID() string {
	if c.User.ID != "" {
		return c.User.ID
	}
	return c.Subject
}

// ValidateExpiry ensures the token hasn't expired at the given instant.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrExpired
	}

	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	return nil
}
