package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"moviesexplorer/pkg/apperr"
	"moviesexplorer/pkg/claims"
	"moviesexplorer/pkg/validation"
)

const typeJSON = "application/json"

// DecodeJSONBody reads a JSON request body into req. On failure the error
// response is already written and false is returned.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, req any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != typeJSON {
		apperr.Respond(w, logger, apperr.New(apperr.BadRequest, "тело запроса должно быть в формате JSON"))
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		apperr.Respond(w, logger, apperr.Wrap(apperr.BadRequest, "некорректный JSON", err))
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		apperr.Respond(w, logger, err)
		return false
	}

	w.Header().Set("Content-Type", typeJSON)

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeMessage(w http.ResponseWriter, logger *slog.Logger, msg string) bool {
	return writeJSON(w, logger, map[string]string{"message": msg})
}

func getClaimsFromContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*claims.Claims, bool) {
	c, ok := claims.FromContext(r.Context())
	if !ok {
		apperr.Respond(w, logger, apperr.New(apperr.AuthRequired, "Необходима авторизация"))
		return nil, false
	}
	return c, true
}

// badRequestFromValidation turns aggregated model validation failures into
// a BadRequest carrying the joined messages.
func badRequestFromValidation(err error) *apperr.Error {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return apperr.Wrap(apperr.BadRequest, errs.Error(), err)
	}
	return nil
}
