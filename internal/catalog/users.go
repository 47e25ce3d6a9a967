package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"nubhostel/internal/membership"
	"nubhostel/internal/session"
)

func (c *Client) GetUser(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	if err := required("email", email); err != nil {
		return User{}, err
	}
	var u User
	if err := c.do(ctx, "get user", http.MethodGet, endpoint("users", email), nil, nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, "list users", http.MethodGet, "users", nil, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// RegisterUser records a user who signed up with email and password. The
// account itself lives with the auth provider.
func (c *Client) RegisterUser(ctx context.Context, sess *session.Session, image string) error {
	return c.register(ctx, "register user", "users", sess, image)
}

// RegisterFederatedUser records a user who signed in through a federated
// provider. The API treats a repeated call as a no-op.
func (c *Client) RegisterFederatedUser(ctx context.Context, sess *session.Session) error {
	return c.register(ctx, "register federated user", endpoint("users", "google"), sess, sess.PhotoURL)
}

func (c *Client) register(ctx context.Context, op, path string, sess *session.Session, image string) error {
	if !sess.Authenticated() {
		return invalid("session", ErrNotAuthenticated)
	}
	in := User{
		Name:  sess.DisplayName(),
		Email: sess.ID(),
		Image: image,
		Badge: membership.DefaultBadge,
	}
	var res apiMessage
	if err := c.do(ctx, op, http.MethodPost, path, nil, in, &res); err != nil {
		return err
	}
	if res.Error != "" {
		return &StatusError{Op: op, Code: http.StatusOK, Message: res.Error}
	}
	if res.Message == "" {
		return &TransportError{Op: op, Err: fmt.Errorf("%w: missing message", ErrInvalidResponse)}
	}
	return nil
}

type modifyResult struct {
	ModifiedCount int `json:"modifiedCount"`
	DeletedCount  int `json:"deletedCount"`
}

// PromoteUser grants the admin role. It reports false when the user was
// already an admin or does not exist.
func (c *Client) PromoteUser(ctx context.Context, id string) (bool, error) {
	if err := required("userId", id); err != nil {
		return false, err
	}
	var res modifyResult
	if err := c.do(ctx, "promote user", http.MethodPatch, endpoint("users", "user", id), nil, nil, &res); err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) (bool, error) {
	if err := required("userId", id); err != nil {
		return false, err
	}
	var res modifyResult
	if err := c.do(ctx, "delete user", http.MethodDelete, endpoint("users", "user", id), nil, nil, &res); err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
