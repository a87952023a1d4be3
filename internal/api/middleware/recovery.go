package middleware

import (
	"net/http"
	"runtime/debug"

	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/megareality/estate/pkg/logger"
	"go.uber.org/zap"
)

// Recovery logs panics and returns 500 with a generic message.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.From(r.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				writeJSONError(w, http.StatusInternalServerError, appErr.CodeInternal, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
