package auth

import (
	"context"
	"net/http"
	"strings"

	"CoffeeCloud/pkg/kit"
)

type ctxKey string

const sessionKey ctxKey = "session"

// Session is the authenticated identity attached to a request.
type Session struct {
	Username string
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}

// RequireSession gates protected routes. It rejects a missing or invalid
// bearer token, and also a token that verifies but carries no embedded
// user, since that token was never tied to a real session.
func RequireSession(tm *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "Missing token.")
				return
			}

			claims, err := tm.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "Invalid token.")
				return
			}

			username, ok := claims.Principal()
			if !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, Session{Username: username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
