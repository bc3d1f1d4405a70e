package session

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"moviesexplorer/pkg/claims"
)

// Manager issues and verifies stateless session tokens. Nothing is stored
// server side, so a token stays valid until it expires.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    TTL,
		now:    time.Now,
	}
}

// WithClock returns a copy of m that stamps tokens using now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

func (m *Manager) Issue(userID string) (string, time.Time, error) {
	issued := m.now().UTC()
	exp := issued.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issued.Unix(),
			ExpiresAt: exp.Unix(),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token signing: %w", err)
	}
	return signed, exp, nil
}

func (m *Manager) Verify(raw string) (*claims.Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	hashSecretGetter := func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	}

	c := &claims.Claims{}
	token, err := jwt.ParseWithClaims(raw, c, hashSecretGetter)
	if err != nil || !token.Valid || c.UserID == "" || c.ExpiresAt == 0 {
		return nil, ErrInvalidToken
	}
	return c, nil
}
