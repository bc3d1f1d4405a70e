package claims_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"moviesexplorer/pkg/claims"
)

func TestFromContext(t *testing.T) {
	_, ok := claims.FromContext(context.Background())
	assert.False(t, ok)

	_, ok = claims.FromContext(claims.WithClaims(context.Background(), &claims.Claims{}))
	assert.False(t, ok, "claims without a user id")

	c, ok := claims.FromContext(claims.WithClaims(context.Background(), &claims.Claims{UserID: "60b6d28f3f1d2f8a2c0d6b5a"}))
	assert.True(t, ok)
	assert.Equal(t, "60b6d28f3f1d2f8a2c0d6b5a", c.UserID)
}
