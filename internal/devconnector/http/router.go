package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/service"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store"
	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/aussiebroadwan/devconnector/pkg/slogx"

	_ "github.com/aussiebroadwan/devconnector/api/devconnector" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	limits       httpx.RateLimits
	metrics      *httpx.Metrics
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	ProfileService *service.ProfileService
	PostService    *service.PostService
	GitHubService  *service.GitHubService
}

func NewRouter(
	verifier jwtx.Verifier,
	limits httpx.RateLimits,
	metrics *httpx.Metrics,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		limits:       limits,
		metrics:      metrics,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// The metrics middleware reads the matched route, so it has to be the
	// last one before the mux.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	if metrics != nil {
		r.middlewares = append(r.middlewares, metrics.Middleware())
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerPosts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			DevConnector API
//	@version		0.1.0
//	@description	Social network backend for developers: accounts, profiles, posts with likes and comments.
//	@description	Protected routes take the token from POST /api/users or POST /api/auth in the x-auth-token header.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/devconnector
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:5000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						x-auth-token
//	@description				Token returned by POST /api/users or POST /api/auth.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured puts h behind the Auth Gate and a per-user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		r.limits.ByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP (brute force)
	r.Mux.Handle("POST /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			r.limits.ByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("POST /api/auth",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			r.limits.ByIP(r.limits.Strict),
		),
	)

	r.Mux.Handle("GET /api/auth", r.secured(h.HandleMe, r.limits.Lenient))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{
		ProfileService: r.ProfileService,
		GitHubService:  r.GitHubService,
	}

	// Public reads - high limit by IP
	r.Mux.Handle("GET /api/profile",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.limits.ByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /api/profile/user/{user_id}",
		httpx.Chain(http.HandlerFunc(h.HandleByUser),
			r.limits.ByIP(r.limits.Public),
		),
	)

	// Calls out to GitHub - moderate limit by IP
	r.Mux.Handle("GET /api/profile/github/{username}",
		httpx.Chain(http.HandlerFunc(h.HandleGitHubRepos),
			r.limits.ByIP(r.limits.Moderate),
		),
	)

	r.Mux.Handle("GET /api/profile/me", r.secured(h.HandleMine, r.limits.Lenient))
	r.Mux.Handle("POST /api/profile", r.secured(h.HandleSave, r.limits.Moderate))
	r.Mux.Handle("DELETE /api/profile", r.secured(h.HandleDeleteAccount, r.limits.Moderate))
	r.Mux.Handle("PUT /api/profile/experience", r.secured(h.HandleAddExperience, r.limits.Moderate))
	r.Mux.Handle("DELETE /api/profile/experience/{exp_id}", r.secured(h.HandleRemoveExperience, r.limits.Moderate))
	r.Mux.Handle("PUT /api/profile/education", r.secured(h.HandleAddEducation, r.limits.Moderate))
	r.Mux.Handle("DELETE /api/profile/education/{edu_id}", r.secured(h.HandleRemoveEducation, r.limits.Moderate))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{PostService: r.PostService}

	r.Mux.Handle("GET /api/posts", r.secured(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("GET /api/posts/{id}", r.secured(h.HandleGet, r.limits.Lenient))

	r.Mux.Handle("POST /api/posts", r.secured(h.HandleCreate, r.limits.Moderate))
	r.Mux.Handle("DELETE /api/posts/{id}", r.secured(h.HandleDelete, r.limits.Moderate))
	r.Mux.Handle("PUT /api/posts/like/{id}", r.secured(h.HandleLike, r.limits.Moderate))
	r.Mux.Handle("PUT /api/posts/unlike/{id}", r.secured(h.HandleUnlike, r.limits.Moderate))
	r.Mux.Handle("POST /api/posts/comment/{id}", r.secured(h.HandleComment, r.limits.Moderate))
	r.Mux.Handle("DELETE /api/posts/comment/{id}/{comment_id}", r.secured(h.HandleDeleteComment, r.limits.Moderate))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			r.limits.ByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			r.limits.ByIP(r.limits.Lenient),
		),
	)

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
