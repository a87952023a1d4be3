package middleware

import (
	"net/http"
	"strings"

	"github.com/megareality/estate/internal/services"
	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
)

// Auth validates a Bearer JWT signed with hmacSecret and attaches the admin
// it names to the request context as the acting admin. With required false a
// missing or bad token is ignored and the request proceeds as the system actor.
func Auth(hmacSecret []byte, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if len(ah) > len("bearer ") && strings.EqualFold(ah[:len("bearer ")], "bearer ") {
				actor, err := services.ParseToken(hmacSecret, strings.TrimSpace(ah[len("bearer "):]))
				if err == nil {
					ctx := services.WithActor(r.Context(), actor)
					ctx = logger.With(ctx, zap.Uint("admin_id", actor.ID))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}
			if required {
				writeJSONError(w, http.StatusUnauthorized, appErr.CodeUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
