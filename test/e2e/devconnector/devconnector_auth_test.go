//go:build e2e

package devconnector_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	client := setupContainer(t, relaxedLimits)

	live, err := client.GetLiveness(t.Context())
	assertHealthy(t, live, err)

	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestRegisterLoginMe(t *testing.T) {
	client := setupContainer(t, relaxedLimits)
	ctx := t.Context()

	registered := registerUser(t, client, "Ada", "Ada@Example.com")

	_, err := client.Register(ctx, devsdk.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: password})
	assertAPIError(t, err, http.StatusBadRequest, "User already exists")

	_, err = client.Login(ctx, "ada@example.com", "wrong-password")
	assertAPIError(t, err, http.StatusBadRequest, "Invalid Credentials")

	session, err := client.Login(ctx, "ada@example.com", password)
	require.NoError(t, err)
	require.NotEqual(t, registered.Token(), session.Token())

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ada", me.Name)
	require.Equal(t, "ada@example.com", me.Email)
	require.Contains(t, me.Avatar, "gravatar.com/avatar/")

	_, err = client.NewSession("not-a-token").Me(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, "Token is invalid")

	_, err = client.NewSession("").Me(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, "No token, authorization denied")
}

// TestRateLimitLogin runs with the stock limits: five credential attempts a
// minute per address.
func TestRateLimitLogin(t *testing.T) {
	client := setupContainer(t, nil)
	ctx := t.Context()

	for i := range 5 {
		_, err := client.Login(ctx, "nobody@example.com", "wrong")
		assertAPIError(t, err, http.StatusBadRequest, "Invalid Credentials")
		t.Logf("attempt %d rejected as expected", i+1)
	}

	_, err := client.Login(ctx, "nobody@example.com", "wrong")
	apiErr, ok := devsdk.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}
