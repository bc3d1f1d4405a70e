package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"moviesexplorer/pkg/apperr"
)

func Panic(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Error("panic recover", "error", err, "stack", string(debug.Stack()))
					// a started response cannot be replaced
					if rec.status != 0 {
						return
					}
					apperr.Respond(w, logger, fmt.Errorf("panic: %v", err))
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
