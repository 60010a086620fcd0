package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T, opts ...jwtx.VerifierOption) (*jwtx.HS256Signer, http.Handler) {
	t.Helper()

	secret := []byte("gate-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, opts...)
	require.NoError(t, err)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.UserIDFromContext(r.Context())
		require.True(t, ok)
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
	})

	return signer, httpx.Chain(echo, httpx.AuthnMiddleware(verifier))
}

func callGate(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	if token != "" {
		req.Header.Set(httpx.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var m httpx.Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	return m.Msg
}

func TestAuthnMiddleware_NoToken(t *testing.T) {
	_, h := newGate(t)

	rec := callGate(h, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, httpx.MsgNoToken, decodeMsg(t, rec))
}

func TestAuthnMiddleware_AuthorizationHeaderIsIgnored(t *testing.T) {
	signer, h := newGate(t)
	token, err := signer.Sign(jwtx.NewClaims("user-a", time.Hour, time.Now()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, httpx.MsgNoToken, decodeMsg(t, rec))
}

func TestAuthnMiddleware_InvalidToken(t *testing.T) {
	_, h := newGate(t)

	rec := callGate(h, "garbage.token.value")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, httpx.MsgInvalidToken, decodeMsg(t, rec))
}

func TestAuthnMiddleware_ExpiredToken(t *testing.T) {
	issued := time.Now().Add(-2 * jwtx.DefaultTokenTTL)
	signer, h := newGate(t)

	token, err := signer.Sign(jwtx.NewClaims("user-a", jwtx.DefaultTokenTTL, issued))
	require.NoError(t, err)

	rec := callGate(h, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, httpx.MsgInvalidToken, decodeMsg(t, rec))
}

func TestAuthnMiddleware_ValidToken(t *testing.T) {
	signer, h := newGate(t)

	token, err := signer.Sign(jwtx.NewClaims("user-a", time.Hour, time.Now()))
	require.NoError(t, err)

	rec := callGate(h, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "user-a", body["id"])
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := httpx.UserIDFromContext(req.Context())
	require.False(t, ok)
}
