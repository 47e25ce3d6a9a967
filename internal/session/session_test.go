package session

import (
	"context"
	"testing"
)

func TestAuthenticated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    *Session
		want bool
	}{
		{"nil", nil, false},
		{"blank email", &Session{Email: "   "}, false},
		{"email", &Session{Email: "a@hostel.com"}, true},
	}
	for _, tt := range tests {
		if got := tt.s.Authenticated(); got != tt.want {
			t.Fatalf("%s: Authenticated() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDisplayNameFallsBackToAnonymous(t *testing.T) {
	t.Parallel()

	var s *Session
	if got := s.DisplayName(); got != "Anonymous" {
		t.Fatalf("DisplayName() = %q, want %q", got, "Anonymous")
	}
	s = &Session{Email: "a@hostel.com", Name: "  Rakib "}
	if got := s.DisplayName(); got != "Rakib" {
		t.Fatalf("DisplayName() = %q, want %q", got, "Rakib")
	}
}

func TestIDIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	s := &Session{Email: " Student@Hostel.com "}
	if got := s.ID(); got != "student@hostel.com" {
		t.Fatalf("ID() = %q, want %q", got, "student@hostel.com")
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	if got := FromContext(context.Background()); got != nil {
		t.Fatalf("FromContext(empty) = %+v, want nil", got)
	}
	want := &Session{Email: "a@hostel.com"}
	ctx := WithSession(context.Background(), want)
	if got := FromContext(ctx); got != want {
		t.Fatalf("FromContext() = %p, want %p", got, want)
	}
}
