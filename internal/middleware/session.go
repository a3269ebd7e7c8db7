package middleware

import (
	"context"
	"net/http"

	"chatfront/internal/service/session"
)

type contextKey struct{ name string }

var tokenKey = &contextKey{"session-token"}

// WithToken stores a session token in the context. Exposed so tests
// can stand in for the cookie round-trip.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// Token returns the session token placed by WithSession, or "".
func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithSession resolves the caller's session-token cookie and makes the
// token available to downstream handlers via the request context.
func WithSession(mgr *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := mgr.Token(w, r)
			next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
		})
	}
}

// RequireUser guards protected routes. Anonymous callers are uniformly
// redirected to the login page; no route answers 401 instead.
func RequireUser(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := store.Get(r.Context(), Token(r.Context()))
			if !ok || sess.User == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
