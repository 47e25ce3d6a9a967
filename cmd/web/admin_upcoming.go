package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nubhostel/internal/catalog"
	"nubhostel/internal/notice"
)

type UpcomingMealPayload struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Ingredients string `json:"ingredients" validate:"max=500"`
	Image       string `json:"image" validate:"omitempty,url"`
}

// adminListUpcomingHandler godoc
//
//	@Summary		Upcoming meals (admin)
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		catalog.UpcomingMeal
//	@Failure		403	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/upcoming-meals [get]
func (app *application) adminListUpcomingHandler(w http.ResponseWriter, r *http.Request) {
	meals, err := app.catalog.ListUpcoming(r.Context())
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch upcoming meals."))
		return
	}
	app.jsonResponse(w, http.StatusOK, meals)
}

// adminCreateUpcomingHandler godoc
//
//	@Summary		Add an upcoming meal
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		UpcomingMealPayload	true	"Upcoming meal"
//	@Success		201		{object}	map[string]any
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/upcoming-meals [post]
func (app *application) adminCreateUpcomingHandler(w http.ResponseWriter, r *http.Request) {
	admin := getUserFromContext(r)

	var payload UpcomingMealPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.Title = strings.TrimSpace(payload.Title)
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var id string
	err := app.runAction(r, "add-upcoming", payload.Title, func(ctx context.Context) error {
		var err error
		id, err = app.catalog.CreateUpcoming(ctx, catalog.UpcomingMeal{
			Title:            payload.Title,
			Description:      payload.Description,
			Ingredients:      payload.Ingredients,
			Image:            payload.Image,
			DistributorName:  admin.Name,
			DistributorEmail: admin.Email,
		})
		return err
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to add upcoming meal."))
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     id,
		"notice": notice.Success("Added", "Upcoming meal added!"),
	})
}

// adminPublishUpcomingHandler godoc
//
//	@Summary		Publish an upcoming meal
//	@Description	Moves the meal into the catalog in one call. On failure nothing changes and the admin may retry.
//	@Tags			admin
//	@Produce		json
//	@Param			mealID	path		string	true	"Upcoming meal ID"
//	@Success		200		{object}	map[string]any
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error	"In progress"
//	@Failure		502		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/upcoming-meals/{mealID}/publish [post]
func (app *application) adminPublishUpcomingHandler(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "mealID")

	err := app.runAction(r, "publish", mealID, func(ctx context.Context) error {
		return app.catalog.PromoteUpcoming(ctx, mealID)
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to publish the meal. Please try again."))
		return
	}

	n := notice.Success("Published", "The meal is now in the catalog.")
	n.Log(app.logger, "meal_id", mealID, "admin", getUserFromContext(r).Email)
	app.jsonResponse(w, http.StatusOK, map[string]any{"notice": n})
}

// adminDeleteUpcomingHandler godoc
//
//	@Summary		Discard an upcoming meal
//	@Tags			admin
//	@Produce		json
//	@Param			mealID	path		string	true	"Upcoming meal ID"
//	@Success		200		{object}	map[string]any
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/upcoming-meals/{mealID} [delete]
func (app *application) adminDeleteUpcomingHandler(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "mealID")

	err := app.runAction(r, "discard-upcoming", mealID, func(ctx context.Context) error {
		return app.catalog.DiscardUpcoming(ctx, mealID)
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not discard the meal."))
		return
	}
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"notice": notice.Success("Discarded", "The upcoming meal has been removed."),
	})
}
