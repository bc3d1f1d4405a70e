package apperr

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Respond is the single place where errors become HTTP responses.
func Respond(w http.ResponseWriter, logger *slog.Logger, err error) {
	appErr := From(err)
	status := appErr.Kind.StatusCode()

	msg := appErr.Message
	if status == http.StatusInternalServerError {
		msg = InternalMessage
		if logger != nil {
			logger.Error("internal error", "kind", appErr.Kind.String(), "error", err)
		}
	} else if logger != nil {
		logger.Debug("request failed", "kind", appErr.Kind.String(), "status", status, "message", msg)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": msg}); err != nil && logger != nil {
		logger.Error("failed to write error response", slog.Any("error", err))
	}
}

// NotFoundHandler plugs the router fallback into the same pipeline. It also
// serves requests whose method matches no route.
func NotFoundHandler(logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Respond(w, logger, New(NotFound, "запрашиваемый ресурс не найден"))
	})
}
