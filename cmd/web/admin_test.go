package main

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"nubhostel/internal/catalog"
	"nubhostel/internal/notice"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "Admin"})
	ta.catalog.SeedUser(catalog.User{Name: "Ops", Email: "ops@hostel.com", Role: "admin"})
	ta.catalog.SeedUser(catalog.User{Name: "Alice", Email: "alice@hostel.com"})

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "capitalized role", token: ta.token(t, "root@hostel.com", "Root"), want: http.StatusOK},
		{name: "lowercase role", token: ta.token(t, "ops@hostel.com", "Ops"), want: http.StatusOK},
		{name: "plain user", token: ta.token(t, "alice@hostel.com", "Alice"), want: http.StatusForbidden},
		{name: "unknown user", token: ta.token(t, "ghost@hostel.com", "Ghost"), want: http.StatusForbidden},
		{name: "no token", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ta.request(t, http.MethodGet, "/v1/admin/profile", tt.token, nil)
			checkStatus(t, rr, tt.want)
		})
	}
}

func TestAdminProfileCountsDistributedMeals(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})
	ta.catalog.SeedMeal(catalog.Meal{Title: "Biryani", DistributorEmail: "root@hostel.com"})
	ta.catalog.SeedMeal(catalog.Meal{Title: "Khichuri", DistributorEmail: "root@hostel.com"})
	ta.catalog.SeedMeal(catalog.Meal{Title: "Paratha", DistributorEmail: "other@hostel.com"})

	rr := ta.request(t, http.MethodGet, "/v1/admin/profile", ta.token(t, "root@hostel.com", "Root"), nil)
	checkStatus(t, rr, http.StatusOK)

	var got struct {
		User      catalog.User `json:"user"`
		MealCount int          `json:"meal_count"`
	}
	decodeData(t, rr, &got)
	if got.MealCount != 2 || got.User.Email != "root@hostel.com" {
		t.Fatalf("profile = %+v, want 2 meals for root", got)
	}
}

func TestAdminPublishUpcomingMeal(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})
	id := ta.catalog.SeedUpcoming(catalog.UpcomingMeal{Title: "Pitha", Likes: 9})
	token := ta.token(t, "root@hostel.com", "Root")

	rr := ta.request(t, http.MethodPost, "/v1/admin/upcoming-meals/"+id+"/publish", token, nil)
	checkStatus(t, rr, http.StatusOK)

	if n := len(ta.catalog.Upcoming()); n != 0 {
		t.Fatalf("upcoming left = %d, want 0", n)
	}
	meals := ta.catalog.Meals()
	if len(meals) != 1 || meals[0].Title != "Pitha" {
		t.Fatalf("meals = %+v, want Pitha", meals)
	}

	rr = ta.request(t, http.MethodPost, "/v1/admin/upcoming-meals/"+id+"/publish", token, nil)
	checkStatus(t, rr, http.StatusNotFound)
}

func TestAdminPublishFailureLeavesMealUpcoming(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})
	id := ta.catalog.SeedUpcoming(catalog.UpcomingMeal{Title: "Pitha"})
	ta.catalog.FailNext("POST /upcoming-meals/{id}/publish", http.StatusInternalServerError)

	rr := ta.request(t, http.MethodPost, "/v1/admin/upcoming-meals/"+id+"/publish", ta.token(t, "root@hostel.com", "Root"), nil)
	checkStatus(t, rr, http.StatusBadGateway)

	if n := len(ta.catalog.Upcoming()); n != 1 {
		t.Fatalf("upcoming = %d, want 1", n)
	}
	if n := len(ta.catalog.Meals()); n != 0 {
		t.Fatalf("meals = %d, want 0", n)
	}
}

func TestAdminCreateUpcomingMeal(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})
	token := ta.token(t, "root@hostel.com", "Root")

	rr := ta.request(t, http.MethodPost, "/v1/admin/upcoming-meals", token, map[string]string{"title": ""})
	checkStatus(t, rr, http.StatusBadRequest)

	rr = ta.request(t, http.MethodPost, "/v1/admin/upcoming-meals", token, map[string]string{
		"title":       "Pitha",
		"description": "Winter rice cake",
	})
	checkStatus(t, rr, http.StatusCreated)

	upcoming := ta.catalog.Upcoming()
	if len(upcoming) != 1 || upcoming[0].DistributorEmail != "root@hostel.com" {
		t.Fatalf("upcoming = %+v", upcoming)
	}
}

func TestAdminListMealsValidatesSort(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})
	ta.catalog.SeedMeal(catalog.Meal{Title: "Khichuri", ReviewsCount: 1})
	ta.catalog.SeedMeal(catalog.Meal{Title: "Biryani", ReviewsCount: 5})
	token := ta.token(t, "root@hostel.com", "Root")

	rr := ta.request(t, http.MethodGet, "/v1/admin/meals?sortBy=price", token, nil)
	checkStatus(t, rr, http.StatusBadRequest)

	rr = ta.request(t, http.MethodGet, "/v1/admin/meals?sortBy=reviews_count", token, nil)
	checkStatus(t, rr, http.StatusOK)
	var got struct {
		Meals []catalog.Meal `json:"meals"`
	}
	decodeData(t, rr, &got)
	if len(got.Meals) != 2 || got.Meals[0].Title != "Biryani" {
		t.Fatalf("meals = %+v, want Biryani first", got.Meals)
	}
}

func TestAdminCreateMealFromForm(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"title":       "Beef Tehari",
		"category":    "lunch",
		"description": "Spiced rice with beef",
		"ingredients": "rice, beef",
		"price":       "4.50",
		"image_url":   "https://img.hostel.test/tehari.png",
	} {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s) error = %v", k, err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/meals", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+ta.token(t, "root@hostel.com", "Root"))
	rr := ta.serve(req)
	checkStatus(t, rr, http.StatusCreated)

	meals := ta.catalog.Meals()
	if len(meals) != 1 {
		t.Fatalf("len(meals) = %d, want 1", len(meals))
	}
	m := meals[0]
	if m.Category != "Lunch" || m.Price != 4.5 || m.DistributorEmail != "root@hostel.com" || m.Likes != 0 {
		t.Fatalf("meal = %+v", m)
	}
	if m.Image != "https://img.hostel.test/tehari.png" {
		t.Fatalf("image = %q", m.Image)
	}
}

func TestAdminDeleteMealRemovesImage(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})
	image := "https://res.cloudinary.com/demo/image/upload/v1/meals/meal_1.png"
	id := ta.catalog.SeedMeal(catalog.Meal{Title: "Biryani", Image: image})

	rr := ta.request(t, http.MethodDelete, "/v1/admin/meals/"+id, ta.token(t, "root@hostel.com", "Root"), nil)
	checkStatus(t, rr, http.StatusOK)

	if n := len(ta.catalog.Meals()); n != 0 {
		t.Fatalf("meals = %d, want 0", n)
	}
	if len(ta.uploader.deleted) != 1 || ta.uploader.deleted[0] != image {
		t.Fatalf("deleted images = %v", ta.uploader.deleted)
	}
}

func TestAdminPromoteAndServe(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})
	aliceID := ta.catalog.SeedUser(catalog.User{Name: "Alice", Email: "alice@hostel.com"})
	reqID := ta.catalog.SeedRequest(catalog.MealRequest{MealID: "m1", Title: "Biryani", UserEmail: "alice@hostel.com", Status: catalog.RequestPending})
	token := ta.token(t, "root@hostel.com", "Root")

	rr := ta.request(t, http.MethodPatch, "/v1/admin/users/"+aliceID+"/role", token, nil)
	checkStatus(t, rr, http.StatusOK)
	var got struct {
		Changed bool `json:"changed"`
	}
	decodeData(t, rr, &got)
	if !got.Changed {
		t.Fatalf("changed = false, want true")
	}

	rr = ta.request(t, http.MethodPatch, "/v1/admin/requests/"+reqID+"/serve", token, nil)
	checkStatus(t, rr, http.StatusOK)
	if !ta.catalog.Requests()[0].Delivered() {
		t.Fatalf("request status = %q, want delivered", ta.catalog.Requests()[0].Status)
	}

	rr = ta.request(t, http.MethodGet, "/v1/admin/users?search=alice", token, nil)
	checkStatus(t, rr, http.StatusOK)
	var users struct {
		Users []catalog.User `json:"users"`
	}
	decodeData(t, rr, &users)
	if len(users.Users) != 1 || !users.Users[0].IsAdmin() {
		t.Fatalf("users = %+v, want admin alice", users.Users)
	}
}

func TestAdminFailuresCarryNotice(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.catalog.SeedUser(catalog.User{Name: "Root", Email: "root@hostel.com", Role: "admin"})
	token := ta.token(t, "root@hostel.com", "Root")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"title":       "Beef Tehari",
		"category":    "Lunch",
		"description": "Spiced rice with beef",
		"price":       "4.50",
	} {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s) error = %v", k, err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/meals", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rr := ta.serve(req)
	checkStatus(t, rr, http.StatusBadRequest)
	if env := decode(t, rr); env.Notice.Kind != notice.KindWarning {
		t.Fatalf("missing image notice = %+v, want warning", env.Notice)
	}
	if n := len(ta.catalog.Meals()); n != 0 {
		t.Fatalf("meals = %d, want 0", n)
	}

	rr = ta.request(t, http.MethodDelete, "/v1/admin/users/nobody", token, nil)
	checkStatus(t, rr, http.StatusNotFound)
	if env := decode(t, rr); env.Notice.Kind != notice.KindError {
		t.Fatalf("unknown user notice = %+v, want error", env.Notice)
	}

	rr = ta.request(t, http.MethodPost, "/v1/upcoming-meals/nope/like", token, nil)
	checkStatus(t, rr, http.StatusNotFound)
	if env := decode(t, rr); env.Notice.Kind != notice.KindError {
		t.Fatalf("unknown upcoming notice = %+v, want error", env.Notice)
	}
}
