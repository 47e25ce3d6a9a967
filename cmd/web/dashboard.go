package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nubhostel/internal/catalog"
	"nubhostel/internal/membership"
	"nubhostel/internal/notice"
	"nubhostel/internal/session"
)

var errNotOwner = errors.New("not found among your records")

type profileView struct {
	User   catalog.User `json:"user"`
	Badges []string     `json:"badges"`
}

// badges lists every badge the user holds. Everyone keeps Bronze.
func badges(u catalog.User) []string {
	out := []string{membership.DefaultBadge}
	if u.Badge != "" && u.Badge != membership.DefaultBadge {
		out = append(out, u.Badge)
	}
	return out
}

// profileHandler godoc
//
//	@Summary		My profile
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	profileView
//	@Failure		401	{object}	error
//	@Failure		404	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard/profile [get]
func (app *application) profileHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	user, err := app.catalog.GetUser(r.Context(), sess.ID())
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not load your profile."))
		return
	}
	app.jsonResponse(w, http.StatusOK, profileView{User: user, Badges: badges(user)})
}

// myReviewsHandler godoc
//
//	@Summary		My reviews
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{array}		catalog.Review
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard/reviews [get]
func (app *application) myReviewsHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	reviews, err := app.catalog.ListReviews(r.Context(), catalog.ReviewQuery{Email: sess.ID()})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch your reviews."))
		return
	}
	app.jsonResponse(w, http.StatusOK, reviews)
}

// deleteMyReviewHandler godoc
//
//	@Summary		Delete one of my reviews
//	@Tags			dashboard
//	@Produce		json
//	@Param			reviewID	path		string	true	"Review ID"
//	@Success		200			{object}	map[string]any
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard/reviews/{reviewID} [delete]
func (app *application) deleteMyReviewHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	reviewID := chi.URLParam(r, "reviewID")

	err := app.runAction(r, "delete-review", reviewID, func(ctx context.Context) error {
		mine, err := app.catalog.ListReviews(ctx, catalog.ReviewQuery{Email: sess.ID()})
		if err != nil {
			return err
		}
		for _, rv := range mine {
			if rv.ID == reviewID {
				return app.catalog.DeleteReview(ctx, reviewID)
			}
		}
		return errNotOwner
	})
	if errors.Is(err, errNotOwner) {
		app.notFoundResponse(w, r, err)
		return
	}
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not delete the review."))
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"notice": notice.Success("Deleted", "Your review has been deleted."),
	})
}

// myRequestsHandler godoc
//
//	@Summary		My requested meals
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{array}		catalog.MealRequest
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard/requests [get]
func (app *application) myRequestsHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	reqs, err := app.catalog.ListRequests(r.Context(), catalog.RequestQuery{Email: sess.ID()})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch requested meals."))
		return
	}
	app.jsonResponse(w, http.StatusOK, reqs)
}

// cancelMyRequestHandler godoc
//
//	@Summary		Cancel one of my meal requests
//	@Tags			dashboard
//	@Produce		json
//	@Param			requestID	path		string	true	"Request ID"
//	@Success		200			{object}	map[string]any
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard/requests/{requestID} [delete]
func (app *application) cancelMyRequestHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	requestID := chi.URLParam(r, "requestID")

	err := app.runAction(r, "cancel-request", requestID, func(ctx context.Context) error {
		mine, err := app.catalog.ListRequests(ctx, catalog.RequestQuery{Email: sess.ID()})
		if err != nil {
			return err
		}
		for _, req := range mine {
			if req.ID == requestID {
				return app.catalog.CancelRequest(ctx, requestID)
			}
		}
		return errNotOwner
	})
	if errors.Is(err, errNotOwner) {
		app.notFoundResponse(w, r, err)
		return
	}
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not cancel the request."))
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"notice": notice.Success("Cancelled", "Your meal request has been cancelled."),
	})
}

// myPaymentsHandler godoc
//
//	@Summary		My payment history
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{array}		catalog.Payment
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard/payments [get]
func (app *application) myPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	payments, err := app.catalog.ListPayments(r.Context(), sess.ID())
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch payment history."))
		return
	}
	app.jsonResponse(w, http.StatusOK, payments)
}
