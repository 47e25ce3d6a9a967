package catalog_test

import (
	"context"
	"net/http"
	"testing"

	"nubhostel/internal/catalog"
	"nubhostel/internal/catalog/catalogtest"
)

func TestPromoteUpcomingMovesMealIntoCatalog(t *testing.T) {
	t.Parallel()

	srv := catalogtest.NewServer(t)
	id := srv.SeedUpcoming(catalog.UpcomingMeal{Title: "Mezban beef", Likes: 5})
	c := newClient(t, srv.URL)
	ctx := context.Background()

	if err := c.PromoteUpcoming(ctx, id); err != nil {
		t.Fatalf("PromoteUpcoming() error = %v", err)
	}

	upcoming, err := c.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("ListUpcoming() error = %v", err)
	}
	for _, u := range upcoming {
		if u.ID == id {
			t.Fatalf("promoted meal still listed as upcoming")
		}
	}

	meals, err := c.ListMeals(ctx, catalog.MealQuery{})
	if err != nil {
		t.Fatalf("ListMeals() error = %v", err)
	}
	if len(meals) != 1 || meals[0].Title != "Mezban beef" || meals[0].Likes != 5 {
		t.Fatalf("ListMeals() = %+v, want the promoted meal", meals)
	}
}

func TestPromoteUpcomingFailureLeavesBothLists(t *testing.T) {
	t.Parallel()

	srv := catalogtest.NewServer(t)
	id := srv.SeedUpcoming(catalog.UpcomingMeal{Title: "Mezban beef"})
	srv.FailNext("POST /upcoming-meals/{id}/publish", http.StatusInternalServerError)
	c := newClient(t, srv.URL)

	if err := c.PromoteUpcoming(context.Background(), id); err == nil {
		t.Fatalf("PromoteUpcoming() error = nil, want failure")
	}
	if len(srv.Upcoming()) != 1 || len(srv.Meals()) != 0 {
		t.Fatalf("lists changed after failed promotion")
	}
}

func TestListUpcomingIsRanked(t *testing.T) {
	t.Parallel()

	srv := catalogtest.NewServer(t)
	srv.SeedUpcoming(catalog.UpcomingMeal{Title: "low", Likes: 1})
	srv.SeedUpcoming(catalog.UpcomingMeal{Title: "high", Likes: 8})
	c := newClient(t, srv.URL)

	got, err := c.ListUpcoming(context.Background())
	if err != nil {
		t.Fatalf("ListUpcoming() error = %v", err)
	}
	if len(got) != 2 || got[0].Title != "high" {
		t.Fatalf("ListUpcoming() = %+v, want high first", got)
	}
}

func TestCreateLikeAndDiscardUpcoming(t *testing.T) {
	t.Parallel()

	srv := catalogtest.NewServer(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()

	id, err := c.CreateUpcoming(ctx, catalog.UpcomingMeal{Title: "Haleem", Likes: 40})
	if err != nil {
		t.Fatalf("CreateUpcoming() error = %v", err)
	}
	n, err := c.LikeUpcoming(ctx, alice, id)
	if err != nil {
		t.Fatalf("LikeUpcoming() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("LikeUpcoming() = %d, want 1", n)
	}
	if err := c.DiscardUpcoming(ctx, id); err != nil {
		t.Fatalf("DiscardUpcoming() error = %v", err)
	}
	if len(srv.Upcoming()) != 0 {
		t.Fatalf("upcoming meal not discarded")
	}
}
