package session

import (
	"errors"
	"net/http"
	"time"

	"moviesexplorer/pkg/claims"
)

const (
	CookieName = "jwt"
	TTL        = 7 * 24 * time.Hour

	// DevSecret signs tokens everywhere except production.
	DevSecret = "dev-secret"
)

var ErrInvalidToken = errors.New("invalid token")

type Issuer interface {
	Issue(userID string) (string, time.Time, error)
}

type Verifier interface {
	Verify(token string) (*claims.Claims, error)
}

// SecretFor picks the signing secret for the deployment environment.
func SecretFor(env, secret string) string {
	if env == "production" {
		return secret
	}
	return DevSecret
}

func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// TokenFromRequest returns the session cookie value or "" when absent.
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
