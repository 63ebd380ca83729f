package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired, malformed, or missing identity. Callers never see the
// underlying jwt error.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenManager issues and verifies HS256 access tokens. The signing key
// is process-wide configuration loaded once at startup.
type TokenManager struct {
	secret  []byte
	expires time.Duration
}

func NewTokenManager(secret string, expires time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), expires: expires}
}

// TTL returns the configured token lifetime (also used for the cookie).
func (m *TokenManager) TTL() time.Duration { return m.expires }

// Issue signs a time-bound token encoding the username as subject.
func (m *TokenManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(m.expires).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates signature and expiry and returns the encoded
// username, or ErrInvalidToken.
func (m *TokenManager) Verify(raw string) (string, error) {
	t, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !t.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
