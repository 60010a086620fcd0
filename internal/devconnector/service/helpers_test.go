package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/service"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store/drivers/sqlite"
	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("service-test-secret")

type services struct {
	store    *sqlite.Store
	auth     *service.AuthService
	profiles *service.ProfileService
	posts    *service.PostService
	verifier *jwtx.HS256Verifier
}

func newServices(t *testing.T) *services {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret)
	require.NoError(t, err)

	return &services{
		store:    st,
		auth:     &service.AuthService{Store: st, Signer: signer, TTL: time.Hour},
		profiles: &service.ProfileService{Store: st},
		posts:    &service.PostService{Store: st},
		verifier: verifier,
	}
}

// register creates a user and returns their id.
func (s *services) register(t *testing.T, name, email string) string {
	t.Helper()

	token, err := s.auth.Register(context.Background(), name, email, "secret1")
	require.NoError(t, err)

	claims, err := s.verifier.Verify(token)
	require.NoError(t, err)
	return claims.UserID()
}
