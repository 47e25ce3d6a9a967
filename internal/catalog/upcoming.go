package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"nubhostel/internal/session"
)

// ListUpcoming returns the upcoming meals ranked by likes.
func (c *Client) ListUpcoming(ctx context.Context) ([]UpcomingMeal, error) {
	var meals []UpcomingMeal
	if err := c.do(ctx, "list upcoming meals", http.MethodGet, "upcoming-meals", nil, nil, &meals); err != nil {
		return nil, err
	}
	return RankUpcoming(meals), nil
}

func (c *Client) CreateUpcoming(ctx context.Context, m UpcomingMeal) (string, error) {
	if err := required("title", strings.TrimSpace(m.Title)); err != nil {
		return "", err
	}
	m.ID = ""
	m.Likes = 0
	m.LikedBy = []string{}
	m.Reviews = []Review{}
	if m.PostTime.IsZero() {
		m.PostTime = c.now().UTC()
	}

	var res insertResult
	if err := c.do(ctx, "create upcoming meal", http.MethodPost, "upcoming-meals", nil, m, &res); err != nil {
		return "", err
	}
	if res.InsertedID == "" {
		return "", &TransportError{Op: "create upcoming meal", Err: fmt.Errorf("%w: missing insertedId", ErrInvalidResponse)}
	}
	return res.InsertedID, nil
}

func (c *Client) LikeUpcoming(ctx context.Context, sess *session.Session, id string) (int, error) {
	return c.like(ctx, "like upcoming meal", sess, endpoint("upcoming-meals", id, "like"), id)
}

func (c *Client) DiscardUpcoming(ctx context.Context, id string) error {
	if err := required("mealId", id); err != nil {
		return err
	}
	return c.do(ctx, "discard upcoming meal", http.MethodDelete, endpoint("upcoming-meals", id), nil, nil, nil)
}

// PromoteUpcoming asks the API to move the meal into the catalog. It is a
// single call; a failure leaves both lists as they were.
func (c *Client) PromoteUpcoming(ctx context.Context, id string) error {
	if err := required("mealId", id); err != nil {
		return err
	}
	return c.do(ctx, "publish upcoming meal", http.MethodPost, endpoint("upcoming-meals", id, "publish"), nil, nil, nil)
}
