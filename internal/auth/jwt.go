package auth

import (
	"fmt"
	"strings"
	"time"

	"nubhostel/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

type JWTAuthenticator struct {
	secret string
	aud    string
	iss    string
}

func NewJWTAuthenticator(secret, aud, iss string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret, aud: aud, iss: iss}
}

// GenerateToken signs a token for s. The provider normally does this; the
// method exists for trusted tooling and tests.
func (a *JWTAuthenticator) GenerateToken(s session.Session, ttl time.Duration) (string, error) {
	if a.secret == "" {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     strings.TrimSpace(s.Email),
		"name":    s.Name,
		"picture": s.PhotoURL,
		"exp":     now.Add(ttl).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
		"iss":     a.iss,
		"aud":     a.aud,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken checks signature, expiry, issuer and audience and returns the
// session the token describes.
func (a *JWTAuthenticator) ValidateToken(token string) (*session.Session, error) {
	if a.secret == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, ErrNoSecret)
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(a.iss),
		jwt.WithAudience(a.aud),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	email, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	s := &session.Session{Email: strings.TrimSpace(email)}
	if name, ok := claims["name"].(string); ok {
		s.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		s.PhotoURL = picture
	}
	return s, nil
}
