package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// ErrInvalid is the only error callers need to check for. Every reason a
// token can be rejected (malformed, bad signature, expired, wrong alg)
// wraps it; the wrapped detail is for server logs, not for clients.
var ErrInvalid = errors.New("jwtx: invalid token")

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier validates tokens signed by an HS256Signer holding the same
// secret.
type HS256Verifier struct {
	secret []byte
	now    func() time.Time
}

// VerifierOption tweaks an HS256Verifier.
type VerifierOption func(*HS256Verifier)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) VerifierOption {
	return func(v *HS256Verifier) { v.now = now }
}

// NewVerifierHS256 creates a verifier for tokens signed with secret.
func NewVerifierHS256(secret []byte, opts ...VerifierOption) (*HS256Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}

	v := &HS256Verifier{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	if tokenStr == "" {
		return Claims{}, invalid(ErrMalformed)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, invalid(ErrExpired)
		}
		return Claims{}, invalid(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, invalid(ErrInvalidClaim)
	}

	if err := claims.ValidateExpiry(v.now()); err != nil {
		return Claims{}, invalid(err)
	}

	if claims.UserID() == "" {
		return Claims{}, invalid(ErrInvalidClaim)
	}

	return *claims, nil
}

func invalid(reason error) error {
	return fmt.Errorf("%w: %w", ErrInvalid, reason)
}
