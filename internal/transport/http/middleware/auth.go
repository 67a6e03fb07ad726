package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"hrcalc/internal/domain/auth"
	"hrcalc/internal/transport/http/api"
)

// Auth attaches the bearer token's user to the context. Requests without a
// valid token pass through anonymously; Authorizer.Require rejects them.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || secret == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, auth.UserContext{
				Subject:  claims.Subject,
				RoleName: claims.RoleName,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (auth.UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(auth.UserContext)
	return user, ok
}

type PermissionStore interface {
	HasPermission(ctx context.Context, roleName, permission string) (bool, error)
}

// Authorizer guards routes by role permission. A nil Authorizer allows
// every request, which is how the server runs without a JWT secret.
type Authorizer struct {
	store PermissionStore
}

func NewAuthorizer(store PermissionStore) *Authorizer {
	return &Authorizer{store: store}
}

// Require answers 401 when the request carries no valid token and 403 when
// the token's role lacks permission.
func (a *Authorizer) Require(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if a == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, r, http.StatusUnauthorized, api.CodeUnauthorized, "bearer token required")
				return
			}

			allowed, err := a.store.HasPermission(r.Context(), user.RoleName, permission)
			if err != nil {
				api.Logger(r.Context()).Error("permission lookup failed", zap.String("permission", permission), zap.Error(err))
				api.Fail(w, r, http.StatusInternalServerError, api.CodeInternal, "permission check failed")
				return
			}
			if !allowed {
				api.Logger(r.Context()).Info("permission denied",
					zap.String("subject", user.Subject),
					zap.String("role", user.RoleName),
					zap.String("permission", permission))
				api.Fail(w, r, http.StatusForbidden, api.CodeForbidden, "role "+user.RoleName+" lacks "+permission)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
