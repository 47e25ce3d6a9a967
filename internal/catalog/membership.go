package catalog

import (
	"context"
	"net/http"
	"net/url"

	"nubhostel/internal/membership"
	"nubhostel/internal/session"
)

type checkoutRequest struct {
	UserID      string `json:"userId"`
	PackageName string `json:"packageName"`
}

// Checkout buys packageName for the session user. The package is validated
// before anything is sent, so an unknown tier never reaches the API.
func (c *Client) Checkout(ctx context.Context, sess *session.Session, packageName string) (membership.Package, string, error) {
	pkg, err := membership.Lookup(packageName)
	if err != nil {
		return membership.Package{}, "", invalid("packageName", err)
	}
	if !sess.Authenticated() {
		return membership.Package{}, "", invalid("session", ErrNotAuthenticated)
	}

	user, err := c.GetUser(ctx, sess.ID())
	if err != nil {
		return membership.Package{}, "", err
	}
	if err := required("userId", user.ID); err != nil {
		return membership.Package{}, "", err
	}

	var res apiMessage
	in := checkoutRequest{UserID: user.ID, PackageName: pkg.Key}
	if err := c.do(ctx, "checkout", http.MethodPost, "membership/checkout", nil, in, &res); err != nil {
		return membership.Package{}, "", err
	}
	if res.Error != "" {
		return membership.Package{}, "", &StatusError{Op: "checkout", Code: http.StatusOK, Message: res.Error}
	}
	return pkg, res.Message, nil
}

func (c *Client) ListPayments(ctx context.Context, email string) ([]Payment, error) {
	if err := required("email", email); err != nil {
		return nil, err
	}
	var payments []Payment
	if err := c.do(ctx, "list payments", http.MethodGet, "payments", url.Values{"email": {email}}, nil, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []Payment{}
	}
	return payments, nil
}
