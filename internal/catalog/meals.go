package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"nubhostel/internal/session"
)

// MealQuery sorts the catalog server side. Zero value means API order.
type MealQuery struct {
	SortBy string
	Order  string
}

func (q MealQuery) values() url.Values {
	v := url.Values{}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
		if q.Order != "" {
			v.Set("order", q.Order)
		}
	}
	return v
}

func (c *Client) ListMeals(ctx context.Context, q MealQuery) ([]Meal, error) {
	var meals []Meal
	if err := c.do(ctx, "list meals", http.MethodGet, "meals", q.values(), nil, &meals); err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []Meal{}
	}
	return meals, nil
}

func (c *Client) GetMeal(ctx context.Context, id string) (Meal, error) {
	if err := required("mealId", id); err != nil {
		return Meal{}, err
	}
	var m Meal
	if err := c.do(ctx, "get meal", http.MethodGet, endpoint("meals", "id", id), nil, nil, &m); err != nil {
		return Meal{}, err
	}
	return m, nil
}

// MealsByDistributor lists the meals posted by the admin with the given email.
func (c *Client) MealsByDistributor(ctx context.Context, email string) ([]Meal, error) {
	if err := required("email", email); err != nil {
		return nil, err
	}
	var meals []Meal
	if err := c.do(ctx, "list distributor meals", http.MethodGet, endpoint("meals", "meel", email), nil, nil, &meals); err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []Meal{}
	}
	return meals, nil
}

type insertResult struct {
	InsertedID string `json:"insertedId"`
}

// CreateMeal adds m to the catalog with no likes and no reviews and returns
// the new identifier.
func (c *Client) CreateMeal(ctx context.Context, m Meal) (string, error) {
	if err := required("title", strings.TrimSpace(m.Title)); err != nil {
		return "", err
	}
	m.ID = ""
	m.Likes = 0
	m.LikedBy = []string{}
	m.Reviews = []Review{}
	m.ReviewsCount = 0
	if m.PostTime.IsZero() {
		m.PostTime = c.now().UTC()
	}

	var res insertResult
	if err := c.do(ctx, "create meal", http.MethodPost, "meals", nil, m, &res); err != nil {
		return "", err
	}
	if res.InsertedID == "" {
		return "", &TransportError{Op: "create meal", Err: fmt.Errorf("%w: missing insertedId", ErrInvalidResponse)}
	}
	return res.InsertedID, nil
}

func (c *Client) DeleteMeal(ctx context.Context, id string) error {
	if err := required("mealId", id); err != nil {
		return err
	}
	return c.do(ctx, "delete meal", http.MethodDelete, endpoint("meals", id), nil, nil, nil)
}

type likeRequest struct {
	UserEmail string `json:"userEmail"`
}

type likeResult struct {
	Likes *int `json:"likes"`
}

// Like records one like by the session's user and returns the like count
// reported by the server. A missing or negative count is ErrInvalidResponse.
func (c *Client) Like(ctx context.Context, sess *session.Session, mealID string) (int, error) {
	return c.like(ctx, "like meal", sess, endpoint("meals", "like", mealID), mealID)
}

func (c *Client) like(ctx context.Context, op string, sess *session.Session, path, id string) (int, error) {
	if !sess.Authenticated() {
		return 0, invalid("session", ErrNotAuthenticated)
	}
	if err := required("mealId", id); err != nil {
		return 0, err
	}

	var res likeResult
	if err := c.do(ctx, op, http.MethodPatch, path, nil, likeRequest{UserEmail: sess.ID()}, &res); err != nil {
		return 0, err
	}
	if res.Likes == nil {
		return 0, &TransportError{Op: op, Err: fmt.Errorf("%w: missing likes", ErrInvalidResponse)}
	}
	if *res.Likes < 0 {
		return 0, &TransportError{Op: op, Err: fmt.Errorf("%w: negative likes %d", ErrInvalidResponse, *res.Likes)}
	}
	return *res.Likes, nil
}

type reviewResult struct {
	Reviews *[]Review `json:"reviews"`
}

// SubmitReview appends a review by the session's user and returns the full
// review list from the server. Blank bodies and anonymous sessions are
// rejected without a request.
func (c *Client) SubmitReview(ctx context.Context, sess *session.Session, mealID, body string) ([]Review, error) {
	if !sess.Authenticated() {
		return nil, invalid("session", ErrNotAuthenticated)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, invalid("review", ErrEmptyReview)
	}
	if err := required("mealId", mealID); err != nil {
		return nil, err
	}

	in := Review{
		UserEmail: sess.ID(),
		UserName:  sess.DisplayName(),
		Review:    body,
		Date:      c.now().UTC(),
	}
	var res reviewResult
	if err := c.do(ctx, "submit review", http.MethodPost, endpoint("meals", "review", mealID), nil, in, &res); err != nil {
		return nil, err
	}
	if res.Reviews == nil {
		return nil, &TransportError{Op: "submit review", Err: fmt.Errorf("%w: missing reviews", ErrInvalidResponse)}
	}
	reviews := *res.Reviews
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}
