package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-service/pkg/token"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/utils"
)

type TokenParser interface {
	Parse(raw string) (token.Claims, error)
}

type claimsKey struct{}

func WithClaims(ctx context.Context, claims token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFrom возвращает данные пользователя, положенные в контекст Auth.
func ClaimsFrom(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(token.Claims)
	return claims, ok
}

// Auth пропускает только запросы с валидным bearer-токеном.
func Auth(parser TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if user, ok := r.Context().Value(requestUserKey{}).(*requestUser); ok {
				user.id = claims.UserID
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole ставится после Auth.
func RequireRole(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, claims.Role) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, raw, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}
