package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	devhttp "github.com/aussiebroadwan/devconnector/internal/devconnector/http"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/service"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store/drivers/sqlite"
	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/aussiebroadwan/devconnector/pkg/idx"
	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("router-test-secret")

type testServer struct {
	URL    string
	client *devsdk.SDKClient
	signer *jwtx.HS256Signer
}

func newTestServer(t *testing.T, limits httpx.RateLimits) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret)
	require.NoError(t, err)

	github := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/octocat/repos" {
			httpx.WriteJSON(w, http.StatusOK, []devsdk.Repo{{ID: 1, Name: "hello-world"}})
			return
		}
		httpx.WriteMsg(w, http.StatusNotFound, "Not Found")
	}))
	t.Cleanup(github.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := devhttp.NewRouter(verifier, limits, httpx.NewMetrics("devconnector"), "test", st, logger)
	router.AuthService = &service.AuthService{Store: st, Signer: signer, TTL: time.Hour}
	router.ProfileService = &service.ProfileService{Store: st}
	router.PostService = &service.PostService{Store: st}
	router.GitHubService = service.NewGitHubService(github.URL, "")
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		client: devsdk.NewSDKClient(srv.URL),
		signer: signer,
	}
}

func relaxedLimits() httpx.RateLimits {
	return httpx.RateLimits{}
}

func (s *testServer) register(t *testing.T, name, email string) *devsdk.Session {
	t.Helper()
	sess, err := s.client.Register(context.Background(), devsdk.RegisterRequest{Name: name, Email: email, Password: "secret1"})
	require.NoError(t, err)
	return sess
}

// raw sends a request outside the SDK, for shapes the SDK never produces.
func (s *testServer) raw(t *testing.T, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL+path, rdr)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set(httpx.TokenHeader, token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func requireAPIError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	apiErr, ok := devsdk.AsAPIError(err)
	require.True(t, ok, "expected an API error, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.True(t, apiErr.HasMessage(msg), "messages %v do not contain %q", apiErr.Messages(), msg)
}

func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t, relaxedLimits())

	registered, err := s.client.Register(ctx, devsdk.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token())

	_, err = s.client.Login(ctx, "a@x.com", "wrong")
	requireAPIError(t, err, http.StatusBadRequest, devhttp.MsgInvalidCredentials)

	loggedIn, err := s.client.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEqual(t, registered.Token(), loggedIn.Token())

	me, err := loggedIn.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "A", me.Name)
	require.Equal(t, "a@x.com", me.Email)

	code, body := s.raw(t, http.MethodGet, "/api/auth", loggedIn.Token(), "")
	require.Equal(t, http.StatusOK, code)
	require.NotContains(t, body, "password")
	require.NotContains(t, body, "password_hash")
	require.Equal(t, me.ID, body["_id"])

	_, err = loggedIn.SaveProfile(ctx, devsdk.ProfileRequest{Status: ptr("Developer"), Skills: ptr("go, sql")})
	require.NoError(t, err)
	withExp, err := loggedIn.AddExperience(ctx, devsdk.ExperienceRequest{Title: "Dev", Company: "Acme", From: "2020-01-01"})
	require.NoError(t, err)
	require.Len(t, withExp.Experience, 1)

	unchanged, err := loggedIn.RemoveExperience(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)
	require.Equal(t, withExp.Experience, unchanged.Experience)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t, relaxedLimits())

	_, err := s.client.Register(ctx, devsdk.RegisterRequest{Name: "", Email: "not-an-email", Password: "123"})
	apiErr, ok := devsdk.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.ElementsMatch(t, []string{
		"Name is required",
		"Please include a valid email",
		"Please enter a password with 6 or more characters",
	}, apiErr.Messages())

	for _, item := range apiErr.Errors {
		require.Equal(t, "body", item.Location)
		if item.Param == "password" {
			require.Nil(t, item.Value, "password must not be echoed")
		}
		if item.Param == "email" {
			require.Equal(t, "not-an-email", item.Value)
		}
	}

	code, body := s.raw(t, http.MethodPost, "/api/users", "", `{"name":`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, devhttp.MsgBadBody, body["msg"])
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t, relaxedLimits())

	s.register(t, "A", "a@x.com")

	_, err := s.client.Register(ctx, devsdk.RegisterRequest{Name: "B", Email: "A@x.com", Password: "secret2"})
	requireAPIError(t, err, http.StatusBadRequest, devhttp.MsgUserExists)

	_, err = s.client.Login(ctx, "a@x.com", "secret2")
	requireAPIError(t, err, http.StatusBadRequest, devhttp.MsgInvalidCredentials)
}

func TestAuthGate(t *testing.T) {
	s := newTestServer(t, relaxedLimits())
	sess := s.register(t, "A", "a@x.com")

	code, body := s.raw(t, http.MethodGet, "/api/auth", "", "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, httpx.MsgNoToken, body["msg"])

	tampered := []byte(sess.Token())
	sig := bytes.LastIndexByte(tampered, '.') + 1
	if tampered[sig] == 'A' {
		tampered[sig] = 'B'
	} else {
		tampered[sig] = 'A'
	}
	code, body = s.raw(t, http.MethodGet, "/api/auth", string(tampered), "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, httpx.MsgInvalidToken, body["msg"])

	expired, err := s.signer.Sign(jwtx.NewClaims("01ARZ3NDEKTSV4RRFFQ69G5FAV", time.Hour, time.Now().Add(-2*time.Hour)))
	require.NoError(t, err)
	code, body = s.raw(t, http.MethodGet, "/api/posts", expired, "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, httpx.MsgInvalidToken, body["msg"])

	code, _ = s.raw(t, http.MethodGet, "/api/profile", "", "")
	require.Equal(t, http.StatusOK, code)
}

func TestUnknownUserToken(t *testing.T) {
	s := newTestServer(t, relaxedLimits())

	ghost, err := s.signer.Sign(jwtx.NewClaims(idx.New().String(), time.Hour, time.Now()))
	require.NoError(t, err)

	code, body := s.raw(t, http.MethodPost, "/api/profile", ghost, `{"status":"Developer","skills":"go"}`)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, devhttp.MsgUserNotFound, body["msg"])

	code, body = s.raw(t, http.MethodGet, "/api/auth", ghost, "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, devhttp.MsgUserNotFound, body["msg"])

	code, body = s.raw(t, http.MethodPost, "/api/posts", ghost, `{"text":"hello"}`)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, devhttp.MsgUserNotFound, body["msg"])

	code, _ = s.raw(t, http.MethodGet, "/api/profile", "", "")
	require.Equal(t, http.StatusOK, code)
}

func TestProfileRoutes(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t, relaxedLimits())
	alice := s.register(t, "Alice", "alice@x.com")

	_, err := alice.MyProfile(ctx)
	requireAPIError(t, err, http.StatusBadRequest, devhttp.MsgNoProfile)

	_, err = alice.SaveProfile(ctx, devsdk.ProfileRequest{Status: ptr("Developer")})
	requireAPIError(t, err, http.StatusBadRequest, "Skills is required")

	_, err = alice.SaveProfile(ctx, devsdk.ProfileRequest{Status: ptr(""), Skills: ptr("go")})
	requireAPIError(t, err, http.StatusBadRequest, "Status is required")

	p, err := alice.SaveProfile(ctx, devsdk.ProfileRequest{
		Status:  ptr("Developer"),
		Skills:  ptr(" go ,sql,, html"),
		YouTube: ptr("https://youtube.com/alice"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"go", "sql", "html"}, p.Skills)
	require.Equal(t, "Alice", p.User.Name)

	p, err = alice.SaveProfile(ctx, devsdk.ProfileRequest{
		Status:  ptr("Senior"),
		Skills:  ptr("go"),
		Twitter: ptr("https://twitter.com/alice"),
	})
	require.NoError(t, err)
	require.Equal(t, "https://youtube.com/alice", p.Social.YouTube)
	require.Equal(t, "https://twitter.com/alice", p.Social.Twitter)

	byUser, err := s.client.GetProfileByUser(ctx, p.User.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, byUser.ID)

	_, err = s.client.GetProfileByUser(ctx, "nope")
	requireAPIError(t, err, http.StatusNotFound, devhttp.MsgProfileNotFound)

	all, err := s.client.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = alice.AddEducation(ctx, devsdk.EducationRequest{School: "Uni", Degree: "BSc", FieldOfStudy: "CS", From: "yesterday"})
	requireAPIError(t, err, http.StatusBadRequest, "From date is required")

	withEdu, err := alice.AddEducation(ctx, devsdk.EducationRequest{School: "Uni", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01", To: "2019-06-30T00:00:00Z"})
	require.NoError(t, err)
	require.Len(t, withEdu.Education, 1)
	require.NotNil(t, withEdu.Education[0].To)
	require.Equal(t, 2015, withEdu.Education[0].From.Year())

	withoutEdu, err := alice.RemoveEducation(ctx, withEdu.Education[0].ID)
	require.NoError(t, err)
	require.Empty(t, withoutEdu.Education)

	repos, err := s.client.GitHubRepos(ctx, "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)

	_, err = s.client.GitHubRepos(ctx, "ghost")
	requireAPIError(t, err, http.StatusNotFound, devhttp.MsgNoGitHubProfile)

	require.NoError(t, alice.DeleteAccount(ctx))
	_, err = alice.Me(ctx)
	requireAPIError(t, err, http.StatusNotFound, devhttp.MsgUserNotFound)

	_, err = s.client.Login(ctx, "alice@x.com", "secret1")
	requireAPIError(t, err, http.StatusBadRequest, devhttp.MsgInvalidCredentials)
}

func TestPostRoutes(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t, relaxedLimits())
	alice := s.register(t, "Alice", "alice@x.com")
	bob := s.register(t, "Bob", "bob@x.com")

	_, err := alice.CreatePost(ctx, "")
	requireAPIError(t, err, http.StatusBadRequest, "Text is required")

	post, err := alice.CreatePost(ctx, "hello")
	require.NoError(t, err)
	require.Equal(t, "Alice", post.Name)
	require.NotNil(t, post.Likes)

	_, err = bob.GetPost(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	requireAPIError(t, err, http.StatusNotFound, devhttp.MsgPostNotFound)

	t.Run("ownership", func(t *testing.T) {
		err := bob.DeletePost(ctx, post.ID)
		requireAPIError(t, err, http.StatusUnauthorized, devhttp.MsgNotAuthorized)

		still, err := bob.GetPost(ctx, post.ID)
		require.NoError(t, err)
		require.Equal(t, "hello", still.Text)
	})

	t.Run("likes", func(t *testing.T) {
		likes, err := bob.Like(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, likes, 1)

		_, err = bob.Like(ctx, post.ID)
		requireAPIError(t, err, http.StatusBadRequest, devhttp.MsgAlreadyLiked)

		likes, err = bob.Unlike(ctx, post.ID)
		require.NoError(t, err)
		require.Empty(t, likes)

		_, err = bob.Unlike(ctx, post.ID)
		requireAPIError(t, err, http.StatusBadRequest, devhttp.MsgNotLiked)
	})

	t.Run("comments", func(t *testing.T) {
		comments, err := bob.Comment(ctx, post.ID, "nice")
		require.NoError(t, err)
		require.Len(t, comments, 1)
		require.Equal(t, "Bob", comments[0].Name)

		_, err = alice.DeleteComment(ctx, post.ID, comments[0].ID)
		requireAPIError(t, err, http.StatusUnauthorized, devhttp.MsgNotAuthorized)

		_, err = bob.DeleteComment(ctx, post.ID, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		requireAPIError(t, err, http.StatusNotFound, devhttp.MsgCommentNotFound)

		comments, err = bob.DeleteComment(ctx, post.ID, comments[0].ID)
		require.NoError(t, err)
		require.Empty(t, comments)
	})

	second, err := bob.CreatePost(ctx, "second")
	require.NoError(t, err)

	posts, err := alice.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, second.ID, posts[0].ID)

	require.NoError(t, alice.DeletePost(ctx, post.ID))
	posts, err = alice.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestRateLimitedLogin(t *testing.T) {
	limits := httpx.DefaultRateLimits()
	limits.Strict = httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	s := newTestServer(t, limits)

	for range 2 {
		code, _ := s.raw(t, http.MethodPost, "/api/auth", "", `{"email":"a@x.com","password":"x"}`)
		require.Equal(t, http.StatusBadRequest, code)
	}

	code, body := s.raw(t, http.MethodPost, "/api/auth", "", `{"email":"a@x.com","password":"x"}`)
	require.Equal(t, http.StatusTooManyRequests, code)
	require.Equal(t, httpx.MsgTooManyRequests, body["msg"])
}

func TestSystemRoutes(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t, relaxedLimits())

	live, err := s.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := s.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	resp, err := http.Get(s.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metrics, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(metrics), `route="GET /readyz"`)

	swagger, err := http.Get(s.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer swagger.Body.Close()
	require.Equal(t, http.StatusOK, swagger.StatusCode)
}

func ptr[T any](v T) *T { return &v }
