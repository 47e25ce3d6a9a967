package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"nubhostel/internal/session"
)

type RequestQuery struct {
	Search string
	Email  string
}

func (c *Client) ListRequests(ctx context.Context, q RequestQuery) ([]MealRequest, error) {
	query := url.Values{}
	if s := strings.TrimSpace(q.Search); s != "" {
		query.Set("search", s)
	}
	if q.Email != "" {
		query.Set("email", q.Email)
	}
	var reqs []MealRequest
	if err := c.do(ctx, "list requested meals", http.MethodGet, "requested-meals", query, nil, &reqs); err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []MealRequest{}
	}
	return reqs, nil
}

// RequestMeal files a pending request for m on behalf of the session user.
func (c *Client) RequestMeal(ctx context.Context, sess *session.Session, m Meal) (string, error) {
	if !sess.Authenticated() {
		return "", invalid("session", ErrNotAuthenticated)
	}
	if err := required("mealId", m.ID); err != nil {
		return "", err
	}
	in := MealRequest{
		MealID:       m.ID,
		Title:        m.Title,
		UserEmail:    sess.ID(),
		UserName:     sess.DisplayName(),
		Likes:        m.Likes,
		ReviewsCount: max(m.ReviewsCount, len(m.Reviews)),
		Status:       RequestPending,
		RequestedAt:  c.now().UTC(),
	}
	var res insertResult
	if err := c.do(ctx, "request meal", http.MethodPost, "requested-meals", nil, in, &res); err != nil {
		return "", err
	}
	if res.InsertedID == "" {
		return "", &TransportError{Op: "request meal", Err: fmt.Errorf("%w: missing insertedId", ErrInvalidResponse)}
	}
	return res.InsertedID, nil
}

// ServeRequest marks a request delivered.
func (c *Client) ServeRequest(ctx context.Context, id string) error {
	if err := required("requestId", id); err != nil {
		return err
	}
	return c.do(ctx, "serve requested meal", http.MethodPatch, endpoint("requested-meals", id, "serve"), nil, nil, nil)
}

func (c *Client) CancelRequest(ctx context.Context, id string) error {
	if err := required("requestId", id); err != nil {
		return err
	}
	return c.do(ctx, "cancel requested meal", http.MethodDelete, endpoint("requested-meals", id), nil, nil, nil)
}
