package middleware

import (
	"log/slog"
	"net/http"

	"moviesexplorer/pkg/apperr"
	"moviesexplorer/pkg/claims"
	"moviesexplorer/pkg/session"
)

const authRequiredMsg = "Необходима авторизация"

// CheckJWT admits requests carrying a valid session cookie and stores the
// token claims in the request context. Any other request is answered with
// 401 and goes no further down the chain.
func CheckJWT(verifier session.Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := session.TokenFromRequest(r)
			if token == "" {
				apperr.Respond(w, logger, apperr.New(apperr.AuthRequired, authRequiredMsg))
				return
			}

			c, err := verifier.Verify(token)
			if err != nil {
				apperr.Respond(w, logger, apperr.Wrap(apperr.AuthRequired, authRequiredMsg, err))
				return
			}

			next.ServeHTTP(w, r.WithContext(claims.WithClaims(r.Context(), c)))
		})
	}
}
