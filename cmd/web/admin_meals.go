package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"nubhostel/internal/catalog"
	"nubhostel/internal/notice"
	"nubhostel/internal/params"
)

var errImageRequired = errors.New("image or image_url is required")

type MealPayload struct {
	Title       string  `validate:"required,max=120"`
	Category    string  `validate:"required,mealcategory"`
	Ingredients string  `validate:"max=500"`
	Description string  `validate:"required,max=2000"`
	Price       float64 `validate:"gte=0"`
	ImageURL    string  `validate:"omitempty,url"`
}

func mealPayloadFromForm(r *http.Request) (MealPayload, error) {
	p := MealPayload{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Ingredients: strings.TrimSpace(r.FormValue("ingredients")),
		Description: strings.TrimSpace(r.FormValue("description")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
	}
	if raw := strings.TrimSpace(r.FormValue("price")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return MealPayload{}, errors.New("price must be a number")
		}
		p.Price = price
	}
	return p, Validate.Struct(p)
}

// adminCreateMealHandler godoc
//
//	@Summary		Add a meal
//	@Description	Uploads the image and adds the meal to the catalog with the admin as distributor
//	@Tags			admin
//	@Accept			mpfd
//	@Produce		json
//	@Param			title		formData	string	true	"Title"
//	@Param			category	formData	string	true	"Breakfast, Lunch, Dinner or Snack"
//	@Param			ingredients	formData	string	false	"Ingredients"
//	@Param			description	formData	string	true	"Description"
//	@Param			price		formData	number	true	"Price"
//	@Param			image		formData	file	false	"Meal image"
//	@Param			image_url	formData	string	false	"Image URL when no file is sent"
//	@Success		201			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		403			{object}	error
//	@Failure		502			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/meals [post]
func (app *application) adminCreateMealHandler(w http.ResponseWriter, r *http.Request) {
	admin := getUserFromContext(r)

	if err := parseMultipartForm(w, r); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload, err := mealPayloadFromForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	category, _ := catalog.ParseCategory(payload.Category)

	var mealID string
	err = app.runAction(r, "add-meal", payload.Title, func(ctx context.Context) error {
		image, err := app.uploadFormImage(ctx, r, "image", "meals")
		if err != nil {
			return err
		}
		if image == "" {
			image = payload.ImageURL
		}
		if image == "" {
			return errImageRequired
		}

		mealID, err = app.catalog.CreateMeal(ctx, catalog.Meal{
			Title:            payload.Title,
			Category:         string(category),
			Ingredients:      payload.Ingredients,
			Description:      payload.Description,
			Price:            payload.Price,
			Image:            image,
			DistributorName:  admin.Name,
			DistributorEmail: admin.Email,
		})
		if err != nil {
			app.deleteImage(ctx, image)
		}
		return err
	})
	if errors.Is(err, errImageRequired) {
		app.badRequestResponse(w, r, err)
		return
	}
	if err != nil {
		if app.imageErrorResponse(w, r, err) {
			return
		}
		app.actionErrorResponse(w, r, err, notice.Error("Oops!", "Failed to add meal"))
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     mealID,
		"notice": notice.Success("Meal Added!", "Your meal was added successfully"),
	})
}

// adminListMealsHandler godoc
//
//	@Summary		All meals
//	@Description	Catalog sorted by likes or review count, paginated
//	@Tags			admin
//	@Produce		json
//	@Param			sortBy	query		string	false	"Sort field"	Enums(likes, reviews_count)
//	@Param			order	query		string	false	"Sort order"	Enums(asc, desc)
//	@Param			page	query		int		false	"Page number (default: 1)"
//	@Param			limit	query		int		false	"Items per page (default: 12)"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/meals [get]
func (app *application) adminListMealsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sort, err := params.ParseSort(q, "likes", "reviews_count")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	meals, err := app.catalog.ListMeals(r.Context(), catalog.MealQuery{SortBy: sort.By, Order: sort.Order})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Failed to fetch meals."))
		return
	}

	pg := params.ParsePagination(q)
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"meals":      params.Page(meals, &pg),
		"sort":       sort,
		"pagination": pg,
	})
}

// adminDeleteMealHandler godoc
//
//	@Summary		Delete a meal
//	@Tags			admin
//	@Produce		json
//	@Param			mealID	path		string	true	"Meal ID"
//	@Success		200		{object}	map[string]any
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/meals/{mealID} [delete]
func (app *application) adminDeleteMealHandler(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "mealID")

	err := app.runAction(r, "delete-meal", mealID, func(ctx context.Context) error {
		meal, err := app.catalog.GetMeal(ctx, mealID)
		if err != nil {
			return err
		}
		if err := app.catalog.DeleteMeal(ctx, mealID); err != nil {
			return err
		}
		app.deleteImage(ctx, meal.Image)
		return nil
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not delete the meal."))
		return
	}
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"notice": notice.Success("Deleted", "The meal has been removed."),
	})
}
