package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"spinnergy/internal/api/util"
	"spinnergy/internal/core/model"
	"spinnergy/internal/core/service"
)

type contextKey string

const accountContextKey contextKey = "account"

type AuthMiddleware struct {
	sessions service.SessionService
}

func NewAuthMiddleware(sessions service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Authenticate resolves the bearer token to an account before the handler
// touches any account state.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			util.WriteError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			util.WriteError(w, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		account, err := m.sessions.Resolve(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrUnknownAccount):
				util.WriteError(w, http.StatusUnauthorized, err.Error())
			default:
				util.WriteError(w, http.StatusInternalServerError, "Error resolving session")
			}
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccountFromContext returns the account resolved by Authenticate, or nil.
func AccountFromContext(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountContextKey).(*model.Account)
	return account
}
