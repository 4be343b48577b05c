package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
)

// RequirePermission checks if the caller's role grants permission
func RequirePermission(clock timezone.Clock, permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := ActorFromContext(r.Context())
			if err != nil {
				response.HandleError(w, clock(), err)
				return
			}

			if !user.HasPermission(actor.Role, permission) {
				slog.WarnContext(r.Context(), "permission denied",
					"user_id", actor.ID, "role", actor.Role, "permission", permission)
				response.HandleError(w, clock(), user.ErrInsufficientPermissions)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
