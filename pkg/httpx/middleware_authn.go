package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/aussiebroadwan/devconnector/pkg/slogx"
)

// TokenHeader carries the bearer token on every gated request.
const TokenHeader = "x-auth-token"

const (
	MsgNoToken      = "No token, authorization denied"
	MsgInvalidToken = "Token is invalid"
)

// AuthnMiddleware rejects requests without a verifiable token and otherwise
// stores the token's user id in the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := strings.TrimSpace(r.Header.Get(TokenHeader))
			if raw == "" {
				WriteMsg(w, http.StatusUnauthorized, MsgNoToken)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteMsg(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			ctx = WithUserID(ctx, claims.UserID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
