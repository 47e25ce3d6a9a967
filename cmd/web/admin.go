package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nubhostel/internal/catalog"
	"nubhostel/internal/notice"
	"nubhostel/internal/params"
)

var errUserNotFound = errors.New("user not found")

// adminProfileHandler godoc
//
//	@Summary		Admin profile
//	@Description	The admin and the number of meals they distributed
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Failure		401	{object}	error
//	@Failure		403	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/profile [get]
func (app *application) adminProfileHandler(w http.ResponseWriter, r *http.Request) {
	admin := getUserFromContext(r)

	meals, err := app.catalog.MealsByDistributor(r.Context(), admin.Email)
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch meal count."))
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"user":       admin,
		"meal_count": len(meals),
	})
}

// adminListUsersHandler godoc
//
//	@Summary		List users
//	@Description	Users matching the search term on name or email, paginated
//	@Tags			admin
//	@Produce		json
//	@Param			search	query		string	false	"Name or email"
//	@Param			page	query		int		false	"Page number (default: 1)"
//	@Param			limit	query		int		false	"Items per page (default: 12)"
//	@Success		200		{object}	map[string]any
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users [get]
func (app *application) adminListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.catalog.ListUsers(r.Context())
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch users."))
		return
	}

	pg := params.ParsePagination(r.URL.Query())
	page := params.Page(catalog.SearchUsers(users, r.URL.Query().Get("search")), &pg)

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"users":      page,
		"pagination": pg,
	})
}

// adminPromoteUserHandler godoc
//
//	@Summary		Make a user admin
//	@Tags			admin
//	@Produce		json
//	@Param			userID	path		string	true	"User ID"
//	@Success		200		{object}	map[string]any
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Failure		409		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/role [patch]
func (app *application) adminPromoteUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var changed bool
	err := app.runAction(r, "promote-user", userID, func(ctx context.Context) error {
		var err error
		changed, err = app.catalog.PromoteUser(ctx, userID)
		return err
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not promote the user."))
		return
	}

	n := notice.Info("No Change", "The user is already an admin.")
	if changed {
		n = notice.Success("Success!", "User promoted to admin")
	}
	n.Log(app.logger, "user_id", userID, "admin", getUserFromContext(r).Email)
	app.jsonResponse(w, http.StatusOK, map[string]any{"changed": changed, "notice": n})
}

// adminDeleteUserHandler godoc
//
//	@Summary		Delete a user
//	@Tags			admin
//	@Produce		json
//	@Param			userID	path		string	true	"User ID"
//	@Success		200		{object}	map[string]any
//	@Failure		401		{object}	error
//	@Failure		403		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID} [delete]
func (app *application) adminDeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var deleted bool
	err := app.runAction(r, "delete-user", userID, func(ctx context.Context) error {
		var err error
		deleted, err = app.catalog.DeleteUser(ctx, userID)
		return err
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not delete the user."))
		return
	}
	if !deleted {
		app.notFoundResponse(w, r, errUserNotFound)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"notice": notice.Success("Deleted!", "User has been removed."),
	})
}

// adminListReviewsHandler godoc
//
//	@Summary		All reviews
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		catalog.Review
//	@Failure		403	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews [get]
func (app *application) adminListReviewsHandler(w http.ResponseWriter, r *http.Request) {
	reviews, err := app.catalog.ListReviews(r.Context(), catalog.ReviewQuery{})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch reviews."))
		return
	}
	app.jsonResponse(w, http.StatusOK, reviews)
}

// adminDeleteReviewHandler godoc
//
//	@Summary		Delete any review
//	@Tags			admin
//	@Produce		json
//	@Param			reviewID	path		string	true	"Review ID"
//	@Success		200			{object}	map[string]any
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews/{reviewID} [delete]
func (app *application) adminDeleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")

	err := app.runAction(r, "delete-review", reviewID, func(ctx context.Context) error {
		return app.catalog.DeleteReview(ctx, reviewID)
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not delete the review."))
		return
	}
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"notice": notice.Success("Deleted", "The review has been deleted."),
	})
}

// adminListRequestsHandler godoc
//
//	@Summary		Requested meals
//	@Tags			admin
//	@Produce		json
//	@Param			search	query		string	false	"User name, email or meal title"
//	@Success		200		{array}		catalog.MealRequest
//	@Failure		403		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/requests [get]
func (app *application) adminListRequestsHandler(w http.ResponseWriter, r *http.Request) {
	reqs, err := app.catalog.ListRequests(r.Context(), catalog.RequestQuery{Search: r.URL.Query().Get("search")})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch requested meals."))
		return
	}
	app.jsonResponse(w, http.StatusOK, reqs)
}

// adminServeRequestHandler godoc
//
//	@Summary		Serve a requested meal
//	@Description	Marks the request delivered
//	@Tags			admin
//	@Produce		json
//	@Param			requestID	path		string	true	"Request ID"
//	@Success		200			{object}	map[string]any
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/requests/{requestID}/serve [patch]
func (app *application) adminServeRequestHandler(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	err := app.runAction(r, "serve-request", requestID, func(ctx context.Context) error {
		return app.catalog.ServeRequest(ctx, requestID)
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to update meal status."))
		return
	}
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"notice": notice.Success("Served", "Meal status updated to delivered"),
	})
}
