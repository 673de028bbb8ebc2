package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/studyflash/flashcards-api/auth"
	"github.com/studyflash/flashcards-api/models"
)

type contextKey string

const (
	userKey  contextKey = "user"
	tokenKey contextKey = "token"
)

// RequireToken resolves the `Authorization: Token <key>` header to a user and
// attaches both the user and the raw key to the request context. Requests
// without a valid token are rejected with 401.
func RequireToken(svc *auth.Service) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key, ok := tokenFromHeader(r)
			if !ok {
				writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
				return
			}

			user, err := svc.Authenticate(r.Context(), key)
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, "Invalid token.")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, tokenKey, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// UserFrom returns the authenticated user attached by RequireToken.
func UserFrom(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok
}

// TokenFrom returns the raw token key the request authenticated with.
func TokenFrom(r *http.Request) (string, bool) {
	key, ok := r.Context().Value(tokenKey).(string)
	return key, ok
}

func tokenFromHeader(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, key, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Token") || key == "" {
		return "", false
	}
	return key, true
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
