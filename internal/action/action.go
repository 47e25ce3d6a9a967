// Package action guards user-triggered mutations against double submission.
//
// Every action moves IDLE -> PENDING -> (SUCCEEDED | FAILED). While an action is
// PENDING for a given actor and entity, its control is disabled and a repeated
// submit is rejected without doing any work.
package action

import (
	"errors"
	"sync"
)

var ErrInProgress = errors.New("action already in progress")

type State int

const (
	Idle State = iota
	Pending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Succeeded:
		return "SUCCESS"
	case Failed:
		return "FAILED"
	default:
		return "IDLE"
	}
}

// Key identifies one control: who pressed it, which action, on which entity.
type Key struct {
	Actor  string
	Action string
	Entity string
}

// Tracker records the actions that are currently PENDING. Terminal states are
// returned to the caller and not retained.
type Tracker struct {
	mu      sync.Mutex
	pending map[Key]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{pending: make(map[Key]struct{})}
}

// Begin moves k to PENDING, or fails with ErrInProgress if it already is.
func (t *Tracker) Begin(k Key) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.pending[k]; ok {
		return ErrInProgress
	}
	t.pending[k] = struct{}{}
	return nil
}

// Finish releases k and reports the terminal state implied by err.
func (t *Tracker) Finish(k Key, err error) State {
	t.mu.Lock()
	delete(t.pending, k)
	t.mu.Unlock()

	if err != nil {
		return Failed
	}
	return Succeeded
}

// State reports PENDING for an in-flight action and IDLE otherwise.
func (t *Tracker) State(k Key) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.pending[k]; ok {
		return Pending
	}
	return Idle
}

// Run executes fn while k is PENDING. fn is not called when k is already pending.
func (t *Tracker) Run(k Key, fn func() error) (State, error) {
	if err := t.Begin(k); err != nil {
		return Pending, err
	}
	err := fn()
	return t.Finish(k, err), err
}

// Len returns the number of pending actions.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
