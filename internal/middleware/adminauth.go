package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kirvedev/ilan-backend/internal/auth"
)

type contextKey string

const sessionTokenKey contextKey = "admin_session_token"

// BearerToken extracts the token from an Authorization: Bearer header,
// falling back to the `token` query parameter for WebSocket clients.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// RequireAdmin denies access to the admin area unless the request carries a
// live session token. The API-shaped equivalent of the frontend redirect to
// the login page is a 401.
func RequireAdmin(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if !gate.Authenticated(token) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"Oturum gerekli"}`))
				return
			}
			ctx := context.WithValue(r.Context(), sessionTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionToken returns the validated token RequireAdmin stored on the
// request context, or "".
func SessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}
