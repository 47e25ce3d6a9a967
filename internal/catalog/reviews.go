package catalog

import (
	"context"
	"net/http"
	"net/url"
)

// ReviewQuery narrows GET /reviews. An empty Email lists every review.
type ReviewQuery struct {
	Email string
}

func (c *Client) ListReviews(ctx context.Context, q ReviewQuery) ([]Review, error) {
	query := url.Values{}
	if q.Email != "" {
		query.Set("email", q.Email)
	}
	var reviews []Review
	if err := c.do(ctx, "list reviews", http.MethodGet, "reviews", query, nil, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	if err := required("reviewId", id); err != nil {
		return err
	}
	return c.do(ctx, "delete review", http.MethodDelete, endpoint("reviews", id), nil, nil, nil)
}
