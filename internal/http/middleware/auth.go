package middleware

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/pkg/log"
)

// TokenVerifier проверяет access-токен и возвращает личность запроса.
// Реализуется *service.Service.
type TokenVerifier interface {
	Authenticate(ctx context.Context, token string) (*models.Identity, error)
}

type identityKey struct{}

// Authenticate требует Bearer-токен в Authorization.
// Ошибки проверки (нет токена, невалиден, отозван, бан) отдаются через WriteError,
// при успехе личность кладётся в контекст, а в логгер добавляется user_id.
func Authenticate(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := v.Authenticate(r.Context(), bearerToken(r))
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := WithIdentity(r.Context(), id)
			ctx = log.With(ctx, "user_id", id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithIdentity кладёт личность в контекст.
func WithIdentity(ctx context.Context, id *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom достаёт личность, положенную Authenticate.
func IdentityFrom(ctx context.Context) (*models.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*models.Identity)
	return id, ok && id != nil
}

func bearerToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))

	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
