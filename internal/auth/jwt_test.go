package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nubhostel/internal/session"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	a := NewJWTAuthenticator("secret", "nubhostel", "nubhostel-auth")
	token, err := a.GenerateToken(session.Session{Email: "a@hostel.com", Name: "Rakib", PhotoURL: "https://img/x.png"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	s, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if s.Email != "a@hostel.com" || s.Name != "Rakib" || s.PhotoURL != "https://img/x.png" {
		t.Fatalf("ValidateToken() = %+v", s)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	t.Parallel()

	good := NewJWTAuthenticator("secret", "nubhostel", "nubhostel-auth")
	tests := []struct {
		name  string
		token func() string
	}{
		{"garbage", func() string { return "not-a-jwt" }},
		{"expired", func() string {
			tok, _ := good.GenerateToken(session.Session{Email: "a@hostel.com"}, -time.Minute)
			return tok
		}},
		{"wrong secret", func() string {
			tok, _ := NewJWTAuthenticator("other", "nubhostel", "nubhostel-auth").GenerateToken(session.Session{Email: "a@hostel.com"}, time.Hour)
			return tok
		}},
		{"wrong audience", func() string {
			tok, _ := NewJWTAuthenticator("secret", "someone-else", "nubhostel-auth").GenerateToken(session.Session{Email: "a@hostel.com"}, time.Hour)
			return tok
		}},
		{"missing subject", func() string {
			tok, _ := good.GenerateToken(session.Session{}, time.Hour)
			return tok
		}},
	}
	for _, tt := range tests {
		if _, err := good.ValidateToken(tt.token()); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: ValidateToken() error = %v, want ErrInvalidToken", tt.name, err)
		}
	}
}

func TestEmptySecretNeverValidates(t *testing.T) {
	t.Parallel()

	a := NewJWTAuthenticator("", "nubhostel", "nubhostel")
	if _, err := a.GenerateToken(session.Session{Email: "admin@hostel.com"}, time.Hour); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("GenerateToken() error = %v, want %v", err, ErrNoSecret)
	}

	claims := jwt.MapClaims{
		"sub": "admin@hostel.com",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iss": "nubhostel",
		"aud": "nubhostel",
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	if s, err := a.ValidateToken(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ValidateToken() = %+v, %v, want %v", s, err, ErrInvalidToken)
	}
}
