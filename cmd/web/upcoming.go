package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nubhostel/internal/catalog"
	"nubhostel/internal/notice"
	"nubhostel/internal/session"
)

var errUpcomingNotFound = errors.New("upcoming meal not found")

type upcomingView struct {
	Meal catalog.UpcomingMeal `json:"meal"`
	Like likeView             `json:"like"`
}

// listUpcomingHandler godoc
//
//	@Summary		Upcoming meals
//	@Description	Candidates for the catalog, most liked first
//	@Tags			upcoming
//	@Produce		json
//	@Success		200	{array}		upcomingView
//	@Failure		502	{object}	error
//	@Router			/upcoming-meals [get]
func (app *application) listUpcomingHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	meals, err := app.catalog.ListUpcoming(r.Context())
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not load upcoming meals."))
		return
	}

	views := make([]upcomingView, 0, len(meals))
	for _, m := range meals {
		views = append(views, upcomingView{Meal: m, Like: newLikeView(catalog.ForUpcoming(m, sess))})
	}
	app.jsonResponse(w, http.StatusOK, views)
}

func findUpcoming(meals []catalog.UpcomingMeal, id string) (catalog.UpcomingMeal, bool) {
	for _, m := range meals {
		if m.ID == id {
			return m, true
		}
	}
	return catalog.UpcomingMeal{}, false
}

// likeUpcomingHandler godoc
//
//	@Summary		Like an upcoming meal
//	@Description	Likes rank upcoming meals for promotion. One like per user.
//	@Tags			upcoming
//	@Produce		json
//	@Param			mealID	path		string	true	"Upcoming meal ID"
//	@Success		200		{object}	map[string]any
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error
//	@Failure		502		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/upcoming-meals/{mealID}/like [post]
func (app *application) likeUpcomingHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	mealID := chi.URLParam(r, "mealID")

	var affordance *catalog.LikeAffordance
	err := app.runAction(r, "like-upcoming", mealID, func(ctx context.Context) error {
		meals, err := app.catalog.ListUpcoming(ctx)
		if err != nil {
			return err
		}
		meal, ok := findUpcoming(meals, mealID)
		if !ok {
			return errUpcomingNotFound
		}
		affordance = catalog.ForUpcoming(meal, sess)
		_, err = affordance.Like(ctx, func(ctx context.Context) (int, error) {
			return app.catalog.LikeUpcoming(ctx, sess, mealID)
		})
		return err
	})
	if errors.Is(err, errUpcomingNotFound) {
		app.notFoundResponse(w, r, err)
		return
	}
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not like the meal."))
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"like":   newLikeView(affordance),
		"notice": notice.Success("Liked", "Thanks for the like!"),
	})
}
