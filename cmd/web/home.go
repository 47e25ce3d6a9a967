package main

import (
	"net/http"

	"nubhostel/internal/catalog"
	"nubhostel/internal/membership"
	"nubhostel/internal/notice"
)

const previewSize = 3

type categoryTab struct {
	Category catalog.Category `json:"category"`
	Meals    []catalog.Meal   `json:"meals"`
}

type homeView struct {
	Site     siteConfig           `json:"site"`
	Tabs     []categoryTab        `json:"tabs"`
	Packages []membership.Package `json:"packages"`
}

// siteHandler godoc
//
//	@Summary		Site metadata
//	@Description	Name, tagline and theme of the front end
//	@Tags			home
//	@Produce		json
//	@Success		200	{object}	siteConfig
//	@Router			/site [get]
func (app *application) siteHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.config.Site); err != nil {
		app.internalServerError(w, r, err)
	}
}

// homeHandler godoc
//
//	@Summary		Home page
//	@Description	Banner, the first meals of each category tab and the membership packages
//	@Tags			home
//	@Produce		json
//	@Success		200	{object}	homeView
//	@Failure		502	{object}	error	"Catalog unavailable"
//	@Router			/home [get]
func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	meals, err := app.catalog.ListMeals(r.Context(), catalog.MealQuery{})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not load meals."))
		return
	}

	tabs := []categoryTab{{Category: catalog.CategoryAll, Meals: catalog.Preview(meals, catalog.CategoryAll, previewSize)}}
	for _, c := range []catalog.Category{catalog.Breakfast, catalog.Lunch, catalog.Dinner} {
		tabs = append(tabs, categoryTab{Category: c, Meals: catalog.Preview(meals, c, previewSize)})
	}

	view := homeView{
		Site:     app.config.Site,
		Tabs:     tabs,
		Packages: membership.All(),
	}
	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}
