package action

import (
	"errors"
	"sync"
	"testing"
)

func TestRunTransitions(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	k := Key{Actor: "a@hostel.com", Action: "like", Entity: "m1"}

	if got := tr.State(k); got != Idle {
		t.Fatalf("initial state = %v, want %v", got, Idle)
	}

	state, err := tr.Run(k, func() error {
		if got := tr.State(k); got != Pending {
			t.Fatalf("state during run = %v, want %v", got, Pending)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if state != Succeeded {
		t.Fatalf("Run() state = %v, want %v", state, Succeeded)
	}
	if got := tr.State(k); got != Idle {
		t.Fatalf("state after run = %v, want %v", got, Idle)
	}

	boom := errors.New("boom")
	state, err = tr.Run(k, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if state != Failed {
		t.Fatalf("Run() state = %v, want %v", state, Failed)
	}
}

func TestRunRejectsDuplicateWhilePending(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	k := Key{Actor: "a@hostel.com", Action: "review", Entity: "m1"}

	release := make(chan struct{})
	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = tr.Run(k, func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	calls := 0
	state, err := tr.Run(k, func() error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrInProgress) {
		t.Fatalf("duplicate Run() error = %v, want %v", err, ErrInProgress)
	}
	if state != Pending {
		t.Fatalf("duplicate Run() state = %v, want %v", state, Pending)
	}
	if calls != 0 {
		t.Fatalf("duplicate fn called %d times, want 0", calls)
	}

	other := Key{Actor: "b@hostel.com", Action: "review", Entity: "m1"}
	if _, err := tr.Run(other, func() error { return nil }); err != nil {
		t.Fatalf("Run() for another actor error = %v", err)
	}

	close(release)
	wg.Wait()
	if got := tr.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	want := map[State]string{Idle: "IDLE", Pending: "PENDING", Succeeded: "SUCCESS", Failed: "FAILED"}
	for s, name := range want {
		if s.String() != name {
			t.Fatalf("%d.String() = %q, want %q", s, s.String(), name)
		}
	}
}
