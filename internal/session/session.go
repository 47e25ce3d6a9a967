package session

import (
	"context"
	"strings"
)

const anonymousName = "Anonymous"

// Session is the signed-in viewer as vouched for by the auth provider.
// Handlers resolve it once per request and hand it to every operation that
// acts on behalf of the user.
type Session struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// Authenticated reports whether s identifies a user. A nil session is anonymous.
func (s *Session) Authenticated() bool {
	return s != nil && strings.TrimSpace(s.Email) != ""
}

// DisplayName is the name shown next to reviews and requests.
func (s *Session) DisplayName() string {
	if s == nil || strings.TrimSpace(s.Name) == "" {
		return anonymousName
	}
	return strings.TrimSpace(s.Name)
}

// ID returns the identifier used for likes and ownership checks.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s.Email))
}

type ctxKey string

const sessionCtx ctxKey = "session"

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtx, s)
}

// FromContext returns the session stored by the auth middleware, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionCtx).(*Session)
	return s
}
