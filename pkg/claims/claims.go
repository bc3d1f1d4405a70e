package claims

import (
	"context"

	jwt "github.com/dgrijalva/jwt-go"
)

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

type Claims struct {
	UserID string `json:"_id"`
	jwt.StandardClaims
}

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, TokenContextKey, c)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(TokenContextKey).(*Claims)
	if !ok || c == nil || c.UserID == "" {
		return nil, false
	}
	return c, true
}
