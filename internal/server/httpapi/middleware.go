package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/barberbook/barberbook/internal/models"
	"github.com/barberbook/barberbook/internal/server/auth"
)

type contextKey string

const userContextKey contextKey = "user"

// requireAuth validates the Bearer token on every request and stores the
// resolved account in the request context. Requests without a valid token
// get a 401 before the wrapped handler runs.
func requireAuth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			user, err := svc.Validate(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func unauthorized(w http.ResponseWriter) {
	_ = writeJSON(w, NewAPIError("unauthenticated", http.StatusUnauthorized), http.StatusUnauthorized)
}

// userFromRequest returns the account requireAuth stored in the context.
func userFromRequest(r *http.Request) models.User {
	user, _ := r.Context().Value(userContextKey).(models.User)
	return user
}
