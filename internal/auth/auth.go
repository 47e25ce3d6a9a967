package auth

import (
	"errors"
	"time"

	"nubhostel/internal/session"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoSecret is returned by an authenticator built without a signing key.
	ErrNoSecret = errors.New("token secret is not configured")
)

// Authenticator turns bearer tokens from the auth provider into sessions.
type Authenticator interface {
	GenerateToken(s session.Session, ttl time.Duration) (string, error)
	ValidateToken(token string) (*session.Session, error)
}
