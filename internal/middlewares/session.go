package middlewares

import (
	"context"
	"net/http"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// SessionResolver resolves an opaque session token to a user.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// SessionMiddleware resolves the session cookie on every request and stores
// the user (nil for anonymous requests) in the context. It never rejects a
// request itself: handlers that need authentication go through the shared
// guard.
func SessionMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(models.SessionCookieName); err == nil {
				token = cookie.Value
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				logger.Log.Errorw("session resolution failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			ctx := SetUserToContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userContextKey is an unexported type for keys in context
type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the resolved user in the context. A nil user
// marks an anonymous request.
func SetUserToContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the resolved user from the context. Returns
// nil for anonymous requests.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
