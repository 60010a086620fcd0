package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestApplicationWiring(t *testing.T) {
	cfg := Config{
		JWTSecret:           "app-test-secret",
		TokenTTL:            time.Hour,
		StoreDriver:         DriverSQLite,
		DatabaseFile:        filepath.Join(t.TempDir(), "devconnector.db"),
		GitHubAPIURL:        "http://127.0.0.1:0",
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
		RateLimits:          httpx.DefaultRateLimits(),
	}

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	client := devsdk.NewSDKClient(srv.URL)
	ctx := t.Context()

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, BuildVersion, ready.Version)

	sess, err := client.Register(ctx, devsdk.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	me, err := sess.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", me.Email)

	_, err = sess.SaveProfile(ctx, devsdk.ProfileRequest{Status: ptr("Developer"), Skills: ptr("go")})
	require.NoError(t, err)

	require.NoError(t, sess.DeleteAccount(ctx))
	profiles, err := client.ListProfiles(ctx)
	require.NoError(t, err)
	require.Empty(t, profiles)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "devconnector_http_requests_total")
}

func TestNew_BadPostgresURL(t *testing.T) {
	_, err := New(Config{
		JWTSecret:   "s",
		TokenTTL:    time.Hour,
		StoreDriver: DriverPostgres,
		DatabaseURL: "postgres://nobody@127.0.0.1:1/none?connect_timeout=1",
		LogLevel:    "error",
	})
	require.Error(t, err)
}

func ptr[T any](v T) *T { return &v }
