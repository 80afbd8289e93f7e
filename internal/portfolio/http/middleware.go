package http

import (
	"context"
	"net/http"

	"github.com/tech2saini/portfolio/internal/portfolio/service"
	"github.com/tech2saini/portfolio/pkg/httpx"
)

const msgNotAuthenticated = "Not authenticated"

// SessionMiddleware resolves the session cookie (when present) and injects
// the user id into the request context. It never rejects; handlers that
// need auth wrap themselves in RequireSession.
func SessionMiddleware(sessions *service.SessionManager) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := sessionToken(r); token != "" {
				if sess, err := sessions.Resolve(r.Context(), token); err == nil {
					ctx := context.WithValue(r.Context(), httpx.CtxKeyUserID, sess.UserID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession rejects requests that did not resolve to a user with a 401.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userID(r); !ok {
			httpx.WriteError(w, http.StatusUnauthorized, msgNotAuthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// userID returns the authenticated user's id from the request context.
func userID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(httpx.CtxKeyUserID).(string)
	return id, ok && id != ""
}
