package middleware

import (
	"context"
	"net/http"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/service"
)

// Authorizer — проверка права по таблице user_role_mappings.
type Authorizer interface {
	Authorize(ctx context.Context, userID int64, c service.Capability) (bool, error)
}

// RequireRole пропускает запрос только при наличии права c.
// Ставится после Authenticate.
func RequireRole(a Authorizer, c service.Capability) Middleware {
	denied := service.ErrRequiresModerator
	if c == service.CapAdminister {
		denied = service.ErrRequiresAdmin
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				apierrors.WriteError(w, r, service.ErrTokenRequired)
				return
			}

			allowed, err := a.Authorize(r.Context(), id.UserID, c)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}
			if !allowed {
				apierrors.WriteError(w, r, denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
