package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("super-secret-test-key")

func newPair(t *testing.T, opts ...jwtx.VerifierOption) (*jwtx.HS256Signer, *jwtx.HS256Verifier) {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	verifier, err := jwtx.NewVerifierHS256(testSecret, opts...)
	require.NoError(t, err)

	return signer, verifier
}

func TestHS256SignAndVerify(t *testing.T) {
	signer, verifier := newPair(t)
	require.Equal(t, "HS256", signer.Alg())

	token, err := signer.Sign(jwtx.NewClaims("user-a", time.Hour, time.Now().UTC()))
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-a", claims.UserID())
	require.Equal(t, "user-a", claims.Subject)
}

func TestHS256TokensResolveToTheirOwnSubject(t *testing.T) {
	signer, verifier := newPair(t)
	now := time.Now().UTC()

	tokA, err := signer.Sign(jwtx.NewClaims("user-a", time.Hour, now))
	require.NoError(t, err)
	tokB, err := signer.Sign(jwtx.NewClaims("user-b", time.Hour, now))
	require.NoError(t, err)

	a, err := verifier.Verify(tokA)
	require.NoError(t, err)
	b, err := verifier.Verify(tokB)
	require.NoError(t, err)

	require.Equal(t, "user-a", a.UserID())
	require.Equal(t, "user-b", b.UserID())
}

func TestHS256TamperedSignature(t *testing.T) {
	signer, verifier := newPair(t)

	token, err := signer.Sign(jwtx.NewClaims("user-a", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	_, err = verifier.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestHS256TamperedPayload(t *testing.T) {
	signer, verifier := newPair(t)
	now := time.Now().UTC()

	tokA, err := signer.Sign(jwtx.NewClaims("user-a", time.Hour, now))
	require.NoError(t, err)
	tokB, err := signer.Sign(jwtx.NewClaims("user-b", time.Hour, now))
	require.NoError(t, err)

	// B's payload under A's signature.
	a := strings.Split(tokA, ".")
	b := strings.Split(tokB, ".")
	forged := a[0] + "." + b[1] + "." + a[2]

	_, err = verifier.Verify(forged)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestHS256WrongSecret(t *testing.T) {
	other, err := jwtx.NewSignerHS256([]byte("a-different-secret"))
	require.NoError(t, err)
	_, verifier := newPair(t)

	token, err := other.Sign(jwtx.NewClaims("user-a", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestHS256Expired(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := issued.Add(jwtx.DefaultTokenTTL + time.Second)

	signer, verifier := newPair(t, jwtx.WithClock(func() time.Time { return later }))

	token, err := signer.Sign(jwtx.NewClaims("user-a", jwtx.DefaultTokenTTL, issued))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestHS256StillValidJustBeforeExpiry(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	almost := issued.Add(jwtx.DefaultTokenTTL - time.Second)

	signer, verifier := newPair(t, jwtx.WithClock(func() time.Time { return almost }))

	token, err := signer.Sign(jwtx.NewClaims("user-a", jwtx.DefaultTokenTTL, issued))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.NoError(t, err)
}

func TestHS256RejectsOtherAlgorithms(t *testing.T) {
	_, verifier := newPair(t)

	claims := jwtx.NewClaims("user-a", time.Hour, time.Now().UTC())
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(unsigned)
	require.ErrorIs(t, err, jwtx.ErrInvalid)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = verifier.Verify(hs512)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestHS256Malformed(t *testing.T) {
	_, verifier := newPair(t)

	for _, tok := range []string{"", "abc", "a.b.c", "not.a.jwt.at.all"} {
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalid, "token %q", tok)
	}
}

func TestHS256MissingSubject(t *testing.T) {
	signer, verifier := newPair(t)

	token, err := signer.Sign(jwtx.NewClaims("", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestHS256EmptySecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256(nil)
	require.ErrorIs(t, err, jwtx.ErrNoSecret)

	_, err = jwtx.NewVerifierHS256([]byte{})
	require.ErrorIs(t, err, jwtx.ErrNoSecret)

	var s *jwtx.HS256Signer
	_, err = s.Sign(jwtx.Claims{})
	require.ErrorIs(t, err, jwtx.ErrNoSecret)
}
