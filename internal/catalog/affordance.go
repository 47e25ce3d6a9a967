package catalog

import (
	"context"

	"nubhostel/internal/session"
)

type LikeState int

const (
	NotLiked LikeState = iota
	Liked
)

func (s LikeState) String() string {
	if s == Liked {
		return "LIKED"
	}
	return "NOT_LIKED"
}

func (s LikeState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LikeFunc performs the remote like and returns the new count.
type LikeFunc func(ctx context.Context) (int, error)

// LikeAffordance is the like button of one meal for one viewer. It only moves
// from NOT_LIKED to LIKED; there is no unlike.
type LikeAffordance struct {
	state LikeState
	likes int
}

// ForMeal starts the affordance from the last fetched snapshot of m.
func ForMeal(m Meal, sess *session.Session) *LikeAffordance {
	return newAffordance(m.Likes, sess.Authenticated() && m.LikedByUser(sess.ID()))
}

func ForUpcoming(m UpcomingMeal, sess *session.Session) *LikeAffordance {
	return newAffordance(m.Likes, sess.Authenticated() && m.LikedByUser(sess.ID()))
}

func newAffordance(likes int, liked bool) *LikeAffordance {
	a := &LikeAffordance{likes: max(likes, 0)}
	if liked {
		a.state = Liked
	}
	return a
}

func (a *LikeAffordance) State() LikeState { return a.state }

func (a *LikeAffordance) Likes() int { return a.likes }

// Enabled reports whether the control accepts a press.
func (a *LikeAffordance) Enabled() bool { return a.state == NotLiked }

// Like calls fn unless the viewer already liked the meal. On success the
// server count is adopted and the state becomes LIKED. On failure nothing
// changes.
func (a *LikeAffordance) Like(ctx context.Context, fn LikeFunc) (int, error) {
	if a.state == Liked {
		return a.likes, ErrAlreadyLiked
	}
	n, err := fn(ctx)
	if err != nil {
		return a.likes, err
	}
	a.state = Liked
	a.likes = max(n, 0)
	return a.likes, nil
}
