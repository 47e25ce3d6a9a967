package main

import (
	"fmt"
	"net/http"
	"testing"

	"nubhostel/internal/catalog"
)

func TestHomeBuildsCategoryTabs(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	for i := 0; i < 5; i++ {
		ta.catalog.SeedMeal(catalog.Meal{Title: fmt.Sprintf("Breakfast %d", i), Category: "Breakfast"})
	}
	ta.catalog.SeedMeal(catalog.Meal{Title: "Tehari", Category: "Lunch"})

	rr := ta.request(t, http.MethodGet, "/v1/home", "", nil)
	checkStatus(t, rr, http.StatusOK)

	var got struct {
		Site struct {
			Name string `json:"name"`
		} `json:"site"`
		Tabs []struct {
			Category string         `json:"category"`
			Meals    []catalog.Meal `json:"meals"`
		} `json:"tabs"`
		Packages []struct {
			Name string `json:"name"`
		} `json:"packages"`
	}
	decodeData(t, rr, &got)

	want := []struct {
		category string
		n        int
	}{
		{"All", 3},
		{"Breakfast", 3},
		{"Lunch", 1},
		{"Dinner", 0},
	}
	if len(got.Tabs) != len(want) {
		t.Fatalf("len(tabs) = %d, want %d", len(got.Tabs), len(want))
	}
	for i, w := range want {
		if got.Tabs[i].Category != w.category || len(got.Tabs[i].Meals) != w.n {
			t.Fatalf("tab %d = %s with %d meals, want %s with %d", i, got.Tabs[i].Category, len(got.Tabs[i].Meals), w.category, w.n)
		}
	}
	if got.Tabs[3].Meals == nil {
		t.Fatalf("empty tab encoded as null")
	}
	if len(got.Packages) != 3 || got.Site.Name != "Hostel Meals" {
		t.Fatalf("packages = %v, site = %q", got.Packages, got.Site.Name)
	}
}

func TestUpcomingMealsAreRankedByLikes(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUpcoming(catalog.UpcomingMeal{Title: "Pitha", Likes: 2})
	ta.catalog.SeedUpcoming(catalog.UpcomingMeal{Title: "Halim", Likes: 8})
	ta.catalog.SeedUpcoming(catalog.UpcomingMeal{Title: "Fuchka", Likes: 5})

	rr := ta.request(t, http.MethodGet, "/v1/upcoming-meals", "", nil)
	checkStatus(t, rr, http.StatusOK)

	var got []struct {
		Meal catalog.UpcomingMeal `json:"meal"`
	}
	decodeData(t, rr, &got)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, title := range []string{"Halim", "Fuchka", "Pitha"} {
		if got[i].Meal.Title != title {
			t.Fatalf("position %d = %q, want %q", i, got[i].Meal.Title, title)
		}
	}
}
