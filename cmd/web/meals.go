package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nubhostel/internal/catalog"
	"nubhostel/internal/notice"
	"nubhostel/internal/params"
	"nubhostel/internal/session"
)

type likeView struct {
	State   catalog.LikeState `json:"state"`
	Likes   int               `json:"likes"`
	Enabled bool              `json:"enabled"`
}

func newLikeView(a *catalog.LikeAffordance) likeView {
	return likeView{State: a.State(), Likes: a.Likes(), Enabled: a.Enabled()}
}

type mealDetailView struct {
	Meal      catalog.Meal `json:"meal"`
	Like      likeView     `json:"like"`
	CanReview bool         `json:"can_review"`
}

// listMealsHandler godoc
//
//	@Summary		List meals
//	@Description	Catalog filtered by category and search term, paginated
//	@Tags			meals
//	@Produce		json
//	@Param			category	query		string	false	"All, Breakfast, Lunch, Dinner or Snack"
//	@Param			search		query		string	false	"Matches title, description and ingredients"
//	@Param			page		query		int		false	"Page number (default: 1)"
//	@Param			limit		query		int		false	"Items per page (default: 12)"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		502			{object}	error
//	@Router			/meals [get]
func (app *application) listMealsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category, err := catalog.ParseCategory(q.Get("category"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	meals, err := app.catalog.ListMeals(r.Context(), catalog.MealQuery{})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not load meals."))
		return
	}

	filtered := catalog.Search(catalog.FilterByCategory(meals, category), q.Get("search"))
	pg := params.ParsePagination(q)
	page := params.Page(filtered, &pg)

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"meals":      page,
		"category":   category,
		"pagination": pg,
	})
}

// getMealHandler godoc
//
//	@Summary		Meal details
//	@Description	One meal with its reviews and the like button state for the viewer
//	@Tags			meals
//	@Produce		json
//	@Param			mealID	path		string	true	"Meal ID"
//	@Success		200		{object}	mealDetailView
//	@Failure		404		{object}	error
//	@Failure		502		{object}	error
//	@Router			/meals/{mealID} [get]
func (app *application) getMealHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	meal, err := app.catalog.GetMeal(r.Context(), chi.URLParam(r, "mealID"))
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not load the meal."))
		return
	}

	view := mealDetailView{
		Meal:      meal,
		Like:      newLikeView(catalog.ForMeal(meal, sess)),
		CanReview: sess.Authenticated(),
	}
	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// likeMealHandler godoc
//
//	@Summary		Like a meal
//	@Description	Adds one like by the current user. A meal can be liked once per user.
//	@Tags			meals
//	@Produce		json
//	@Param			mealID	path		string	true	"Meal ID"
//	@Success		200		{object}	map[string]any
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error	"Already liked or in progress"
//	@Failure		502		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/meals/{mealID}/like [post]
func (app *application) likeMealHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	mealID := chi.URLParam(r, "mealID")

	var affordance *catalog.LikeAffordance
	err := app.runAction(r, "like", mealID, func(ctx context.Context) error {
		meal, err := app.catalog.GetMeal(ctx, mealID)
		if err != nil {
			return err
		}
		affordance = catalog.ForMeal(meal, sess)
		_, err = affordance.Like(ctx, func(ctx context.Context) (int, error) {
			return app.catalog.Like(ctx, sess, mealID)
		})
		return err
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not like the meal."))
		return
	}

	n := notice.Success("Liked", "Thanks for the like!")
	n.Log(app.logger, "meal_id", mealID, "user", sess.ID())
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"like":   newLikeView(affordance),
		"notice": n,
	})
}

type ReviewPayload struct {
	Review string `json:"review" validate:"max=2000"`
}

// reviewMealHandler godoc
//
//	@Summary		Review a meal
//	@Description	Appends a review by the current user and returns the full review list
//	@Tags			meals
//	@Accept			json
//	@Produce		json
//	@Param			mealID	path		string			true	"Meal ID"
//	@Param			payload	body		ReviewPayload	true	"Review"
//	@Success		201		{object}	map[string]any
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		409		{object}	error	"In progress"
//	@Failure		422		{object}	error	"Empty review"
//	@Failure		502		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/meals/{mealID}/reviews [post]
func (app *application) reviewMealHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	mealID := chi.URLParam(r, "mealID")

	var payload ReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var reviews []catalog.Review
	err := app.runAction(r, "review", mealID, func(ctx context.Context) error {
		var err error
		reviews, err = app.catalog.SubmitReview(ctx, sess, mealID, payload.Review)
		return err
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not submit review."))
		return
	}

	n := notice.Success("Success", "Review submitted!")
	n.Log(app.logger, "meal_id", mealID, "user", sess.ID())
	app.jsonResponse(w, http.StatusCreated, map[string]any{
		"reviews": reviews,
		"notice":  n,
	})
}

// requestMealHandler godoc
//
//	@Summary		Request a meal
//	@Description	Files a pending meal request for the current user
//	@Tags			meals
//	@Produce		json
//	@Param			mealID	path		string	true	"Meal ID"
//	@Success		201		{object}	map[string]any
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error	"In progress"
//	@Failure		502		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/meals/{mealID}/request [post]
func (app *application) requestMealHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	mealID := chi.URLParam(r, "mealID")

	var requestID string
	err := app.runAction(r, "request", mealID, func(ctx context.Context) error {
		meal, err := app.catalog.GetMeal(ctx, mealID)
		if err != nil {
			return err
		}
		requestID, err = app.catalog.RequestMeal(ctx, sess, meal)
		return err
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not request the meal."))
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     requestID,
		"notice": notice.Success("Requested", "Your meal request is pending."),
	})
}
