package httpx

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/devconnector/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters. Fields carry env
// tags so a RateLimits value can be filled from RATELIMIT_<PROFILE>_*.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int `env:"REQUESTS"`
	// Window is the time window for rate limiting
	Window time.Duration `env:"WINDOW"`
	// Burst allows for temporary bursts above the rate limit
	Burst int `env:"BURST"`
}

func (c RateLimitConfig) limit() rate.Limit {
	if c.Window <= 0 || c.RequestsPerWindow <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// RateLimits groups the profiles routes pick from.
type RateLimits struct {
	// Strict guards login and registration (brute force prevention).
	Strict RateLimitConfig `envPrefix:"STRICT_"`
	// Moderate is for authenticated writes.
	Moderate RateLimitConfig `envPrefix:"MODERATE_"`
	// Lenient is for authenticated reads.
	Lenient RateLimitConfig `envPrefix:"LENIENT_"`
	// Public is for anonymous read-only endpoints.
	Public RateLimitConfig `envPrefix:"PUBLIC_"`
	// TrustProxy keys buckets on X-Forwarded-For / X-Real-IP. Only set it
	// when a reverse proxy in front of the server overwrites those headers.
	TrustProxy bool `env:"TRUST_PROXY"`
}

// ByIP limits by client address using the extractor TrustProxy selects.
func (l RateLimits) ByIP(config RateLimitConfig) Middleware {
	if l.TrustProxy {
		return RateLimitMiddleware(config, ForwardedIPKeyExtractor)
	}
	return RateLimitByIP(config)
}

// ByUser is RateLimitByUser with the client address taken the same way as ByIP.
func (l RateLimits) ByUser(config RateLimitConfig) Middleware {
	if l.TrustProxy {
		return RateLimitMiddleware(config, CompositeKeyExtractor(":",
			UserIDKeyExtractor,
			ForwardedIPKeyExtractor,
		))
	}
	return RateLimitByUser(config)
}

// DefaultRateLimits returns the stock profiles: 5, 20, 100 and 1000
// requests per minute, each with the full window available as a burst.
func DefaultRateLimits() RateLimits {
	perMinute := func(n int) RateLimitConfig {
		return RateLimitConfig{RequestsPerWindow: n, Window: time.Minute, Burst: n}
	}
	return RateLimits{
		Strict:   perMinute(5),
		Moderate: perMinute(20),
		Lenient:  perMinute(100),
		Public:   perMinute(1000),
	}
}

// KeyExtractor derives the bucket a request is counted against.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor returns the host of the connection's remote address.
// Client supplied headers are ignored.
func IPKeyExtractor(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ForwardedIPKeyExtractor prefers the first X-Forwarded-For entry, then
// X-Real-IP, then the remote address. Use it only behind a trusted proxy.
func ForwardedIPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return IPKeyExtractor(r)
}

// UserIDKeyExtractor returns the authenticated user id, or "".
func UserIDKeyExtractor(r *http.Request) string {
	userID, _ := UserIDFromContext(r.Context())
	return userID
}

// CompositeKeyExtractor joins the non-empty keys of several extractors,
// e.g. "user123:192.168.1.1".
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// MsgTooManyRequests is the body message of a 429.
const MsgTooManyRequests = "Too many requests, please try again later"

const limiterIdleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet hands out one token bucket per key and forgets keys that have
// been idle for limiterIdleTTL.
type limiterSet struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func newLimiterSet(cfg RateLimitConfig) *limiterSet {
	return &limiterSet{
		buckets:   make(map[string]*bucket),
		limit:     cfg.limit(),
		burst:     max(cfg.Burst, 1),
		lastSweep: time.Now(),
	}
}

func (s *limiterSet) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > limiterIdleTTL {
		for k, b := range s.buckets {
			if now.Sub(b.lastSeen) > limiterIdleTTL {
				delete(s.buckets, k)
			}
		}
		s.lastSweep = now
	}

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// RateLimitMiddleware limits requests per key. Requests whose key cannot be
// extracted are let through and logged. Rejections get a 429 with
// Retry-After set to the wait for the next token, in whole seconds.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	set := newLimiterSet(config)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			limiter := set.get(key, now)

			res := limiter.ReserveN(now, 1)
			if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
				res.CancelAt(now)

				retryAfter := max(int(delay.Round(time.Second).Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", config.Window.String())

				log.Warn("rate limit exceeded",
					"key", key,
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				WriteMsg(w, http.StatusTooManyRequests, MsgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits by client address only.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated user, falling back to the client
// address on routes without a user.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, CompositeKeyExtractor(":",
		UserIDKeyExtractor,
		IPKeyExtractor,
	))
}
