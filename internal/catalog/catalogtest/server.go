// Package catalogtest runs an in-memory hostel meals API for tests.
package catalogtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"nubhostel/internal/catalog"
	"nubhostel/internal/membership"
)

// Server is a fake of the remote API. Routes are keyed as "METHOD pattern",
// for example "PATCH /meals/like/{id}".
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	seq           int
	meals         []catalog.Meal
	upcoming      []catalog.UpcomingMeal
	users         []catalog.User
	reviews       []catalog.Review
	requests      []catalog.MealRequest
	payments      []catalog.Payment
	hits          map[string]int
	failures      map[string]int
	lastRequestID string
}

// NewServer starts a server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		hits:     make(map[string]int),
		failures: make(map[string]int),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	s.handle(r, http.MethodGet, "/meals", s.listMeals)
	s.handle(r, http.MethodPost, "/meals", s.createMeal)
	s.handle(r, http.MethodGet, "/meals/id/{id}", s.getMeal)
	s.handle(r, http.MethodGet, "/meals/meel/{email}", s.mealsByDistributor)
	s.handle(r, http.MethodDelete, "/meals/{id}", s.deleteMeal)
	s.handle(r, http.MethodPatch, "/meals/like/{id}", s.likeMeal)
	s.handle(r, http.MethodPost, "/meals/review/{id}", s.reviewMeal)

	s.handle(r, http.MethodGet, "/users", s.listUsers)
	s.handle(r, http.MethodPost, "/users", s.createUser)
	s.handle(r, http.MethodPost, "/users/google", s.createUser)
	s.handle(r, http.MethodGet, "/users/{email}", s.getUser)
	s.handle(r, http.MethodPatch, "/users/user/{id}", s.promoteUser)
	s.handle(r, http.MethodDelete, "/users/user/{id}", s.deleteUser)

	s.handle(r, http.MethodPost, "/membership/checkout", s.checkout)
	s.handle(r, http.MethodGet, "/payments", s.listPayments)

	s.handle(r, http.MethodGet, "/upcoming-meals", s.listUpcoming)
	s.handle(r, http.MethodPost, "/upcoming-meals", s.createUpcoming)
	s.handle(r, http.MethodPatch, "/upcoming-meals/{id}/like", s.likeUpcoming)
	s.handle(r, http.MethodDelete, "/upcoming-meals/{id}", s.deleteUpcoming)
	s.handle(r, http.MethodPost, "/upcoming-meals/{id}/publish", s.publishUpcoming)

	s.handle(r, http.MethodGet, "/reviews", s.listReviews)
	s.handle(r, http.MethodDelete, "/reviews/{id}", s.deleteReview)

	s.handle(r, http.MethodGet, "/requested-meals", s.listRequests)
	s.handle(r, http.MethodPost, "/requested-meals", s.createRequest)
	s.handle(r, http.MethodPatch, "/requested-meals/{id}/serve", s.serveRequest)
	s.handle(r, http.MethodDelete, "/requested-meals/{id}", s.deleteRequest)

	return r
}

func (s *Server) handle(r chi.Router, method, pattern string, h http.HandlerFunc) {
	key := method + " " + pattern
	r.MethodFunc(method, pattern, func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		s.hits[key]++
		s.lastRequestID = req.Header.Get("X-Request-ID")
		status, fail := s.failures[key]
		delete(s.failures, key)
		s.mu.Unlock()

		if fail {
			writeJSON(w, status, map[string]string{"error": "injected failure"})
			return
		}
		h(w, req)
	})
}

// Hits returns how many requests reached route.
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// TotalHits counts requests across every route.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.hits {
		n += v
	}
	return n
}

// FailNext makes the next request to route answer with status.
func (s *Server) FailNext(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = status
}

func (s *Server) LastRequestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequestID
}

func (s *Server) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s%d", prefix, s.seq)
}

// SeedMeal stores m and returns its id.
func (s *Server) SeedMeal(m catalog.Meal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = s.nextID("meal")
	}
	if m.LikedBy == nil {
		m.LikedBy = []string{}
	}
	if m.Reviews == nil {
		m.Reviews = []catalog.Review{}
	}
	s.meals = append(s.meals, m)
	return m.ID
}

func (s *Server) SeedUpcoming(m catalog.UpcomingMeal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = s.nextID("upcoming")
	}
	if m.LikedBy == nil {
		m.LikedBy = []string{}
	}
	s.upcoming = append(s.upcoming, m)
	return m.ID
}

func (s *Server) SeedUser(u catalog.User) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = s.nextID("user")
	}
	s.users = append(s.users, u)
	return u.ID
}

func (s *Server) SeedReview(r catalog.Review) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = s.nextID("review")
	}
	s.reviews = append(s.reviews, r)
	return r.ID
}

func (s *Server) SeedRequest(r catalog.MealRequest) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = s.nextID("request")
	}
	s.requests = append(s.requests, r)
	return r.ID
}

func (s *Server) Meals() []catalog.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.meals)
}

func (s *Server) Upcoming() []catalog.UpcomingMeal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.upcoming)
}

func (s *Server) Users() []catalog.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

func (s *Server) Reviews() []catalog.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reviews)
}

func (s *Server) Requests() []catalog.MealRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

func (s *Server) Payments() []catalog.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.payments)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return false
	}
	return true
}

func (s *Server) listMeals(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	meals := slices.Clone(s.meals)
	s.mu.Unlock()

	var key func(catalog.Meal) int
	switch r.URL.Query().Get("sortBy") {
	case "likes":
		key = func(m catalog.Meal) int { return m.Likes }
	case "reviews_count":
		key = func(m catalog.Meal) int { return m.ReviewsCount }
	}
	if key != nil {
		asc := r.URL.Query().Get("order") == "asc"
		slices.SortStableFunc(meals, func(a, b catalog.Meal) int {
			if asc {
				return key(a) - key(b)
			}
			return key(b) - key(a)
		})
	}
	if meals == nil {
		meals = []catalog.Meal{}
	}
	writeJSON(w, http.StatusOK, meals)
}

func (s *Server) mealIndex(id string) int {
	return slices.IndexFunc(s.meals, func(m catalog.Meal) bool { return m.ID == id })
}

func (s *Server) getMeal(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.mealIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "meal not found")
		return
	}
	writeJSON(w, http.StatusOK, s.meals[i])
}

func (s *Server) mealsByDistributor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []catalog.Meal{}
	for _, m := range s.meals {
		if strings.EqualFold(m.DistributorEmail, email) {
			out = append(out, m)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createMeal(w http.ResponseWriter, r *http.Request) {
	var m catalog.Meal
	if !readJSON(w, r, &m) {
		return
	}
	if m.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	id := s.SeedMeal(m)
	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

func (s *Server) deleteMeal(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.mealIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "meal not found")
		return
	}
	s.meals = slices.Delete(s.meals, i, i+1)
	writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}

type likeBody struct {
	UserEmail string `json:"userEmail"`
}

func (s *Server) likeMeal(w http.ResponseWriter, r *http.Request) {
	var in likeBody
	if !readJSON(w, r, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.mealIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "meal not found")
		return
	}
	m := &s.meals[i]
	if m.LikedByUser(in.UserEmail) {
		writeError(w, http.StatusConflict, "you already liked this meal")
		return
	}
	m.LikedBy = append(m.LikedBy, in.UserEmail)
	m.Likes++
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) reviewMeal(w http.ResponseWriter, r *http.Request) {
	var in catalog.Review
	if !readJSON(w, r, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.mealIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "meal not found")
		return
	}
	m := &s.meals[i]
	m.Reviews = append(m.Reviews, in)
	m.ReviewsCount = len(m.Reviews)

	in.ID = s.nextID("review")
	in.MealID = m.ID
	in.MealTitle = m.Title
	s.reviews = append(s.reviews, in)

	writeJSON(w, http.StatusOK, m)
}

func (s *Server) userIndex(match func(catalog.User) bool) int {
	return slices.IndexFunc(s.users, match)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Users())
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(func(u catalog.User) bool { return strings.EqualFold(u.Email, email) })
	if i < 0 {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, s.users[i])
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var in catalog.User
	if !readJSON(w, r, &in) {
		return
	}
	if in.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	s.mu.Lock()
	exists := s.userIndex(func(u catalog.User) bool { return strings.EqualFold(u.Email, in.Email) }) >= 0
	s.mu.Unlock()
	if exists {
		writeJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	}
	in.Role = ""
	s.SeedUser(in)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "user created"})
}

func (s *Server) promoteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(func(u catalog.User) bool { return u.ID == id })
	if i < 0 || s.users[i].Role == catalog.RoleAdmin {
		writeJSON(w, http.StatusOK, map[string]int{"modifiedCount": 0})
		return
	}
	s.users[i].Role = catalog.RoleAdmin
	writeJSON(w, http.StatusOK, map[string]int{"modifiedCount": 1})
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(func(u catalog.User) bool { return u.ID == id })
	if i < 0 {
		writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 0})
		return
	}
	s.users = slices.Delete(s.users, i, i+1)
	writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID      string `json:"userId"`
		PackageName string `json:"packageName"`
	}
	if !readJSON(w, r, &in) {
		return
	}
	pkg, err := membership.Lookup(in.PackageName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid package")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(func(u catalog.User) bool { return u.ID == in.UserID })
	if i < 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	s.users[i].Badge = pkg.Badge()
	s.payments = append(s.payments, catalog.Payment{
		ID:            s.nextID("payment"),
		Email:         s.users[i].Email,
		PackageName:   pkg.Name,
		Amount:        float64(pkg.PriceCents) / 100,
		TransactionID: uuid.NewString(),
		Status:        "Paid",
		Date:          time.Now().UTC(),
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Membership upgraded to %s", pkg.Name)})
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	out := []catalog.Payment{}
	for _, p := range s.Payments() {
		if email == "" || strings.EqualFold(p.Email, email) {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) upcomingIndex(id string) int {
	return slices.IndexFunc(s.upcoming, func(m catalog.UpcomingMeal) bool { return m.ID == id })
}

func (s *Server) listUpcoming(w http.ResponseWriter, r *http.Request) {
	out := s.Upcoming()
	if out == nil {
		out = []catalog.UpcomingMeal{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createUpcoming(w http.ResponseWriter, r *http.Request) {
	var m catalog.UpcomingMeal
	if !readJSON(w, r, &m) {
		return
	}
	if m.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	id := s.SeedUpcoming(m)
	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

func (s *Server) likeUpcoming(w http.ResponseWriter, r *http.Request) {
	var in likeBody
	if !readJSON(w, r, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.upcomingIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "upcoming meal not found")
		return
	}
	m := &s.upcoming[i]
	if m.LikedByUser(in.UserEmail) {
		writeError(w, http.StatusConflict, "you already liked this meal")
		return
	}
	m.LikedBy = append(m.LikedBy, in.UserEmail)
	m.Likes++
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) deleteUpcoming(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.upcomingIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "upcoming meal not found")
		return
	}
	s.upcoming = slices.Delete(s.upcoming, i, i+1)
	writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}

// publishUpcoming copies the meal into the catalog and removes it from the
// upcoming set in one step.
func (s *Server) publishUpcoming(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.upcomingIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "upcoming meal not found")
		return
	}
	u := s.upcoming[i]
	reviews := u.Reviews
	if reviews == nil {
		reviews = []catalog.Review{}
	}
	m := catalog.Meal{
		ID:               s.nextID("meal"),
		Title:            u.Title,
		Description:      u.Description,
		Ingredients:      u.Ingredients,
		Image:            u.Image,
		Likes:            u.Likes,
		LikedBy:          u.LikedBy,
		Reviews:          reviews,
		ReviewsCount:     u.ReviewsCount,
		PostTime:         time.Now().UTC(),
		DistributorName:  u.DistributorName,
		DistributorEmail: u.DistributorEmail,
	}
	s.meals = append(s.meals, m)
	s.upcoming = slices.Delete(s.upcoming, i, i+1)
	writeJSON(w, http.StatusOK, map[string]string{"message": "published", "insertedId": m.ID})
}

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	out := []catalog.Review{}
	for _, rv := range s.Reviews() {
		if email == "" || strings.EqualFold(rv.UserEmail, email) {
			out = append(out, rv)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) deleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.reviews, func(rv catalog.Review) bool { return rv.ID == id })
	if i < 0 {
		writeError(w, http.StatusNotFound, "review not found")
		return
	}
	s.reviews = slices.Delete(s.reviews, i, i+1)
	writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}

func (s *Server) listRequests(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))
	email := r.URL.Query().Get("email")
	out := []catalog.MealRequest{}
	for _, req := range s.Requests() {
		if email != "" && !strings.EqualFold(req.UserEmail, email) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(req.UserName), search) &&
			!strings.Contains(strings.ToLower(req.UserEmail), search) &&
			!strings.Contains(strings.ToLower(req.Title), search) {
			continue
		}
		out = append(out, req)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request) {
	var in catalog.MealRequest
	if !readJSON(w, r, &in) {
		return
	}
	if in.MealID == "" || in.UserEmail == "" {
		writeError(w, http.StatusBadRequest, "mealId and userEmail are required")
		return
	}
	if in.Status == "" {
		in.Status = catalog.RequestPending
	}
	id := s.SeedRequest(in)
	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

func (s *Server) requestIndex(id string) int {
	return slices.IndexFunc(s.requests, func(m catalog.MealRequest) bool { return m.ID == id })
}

func (s *Server) serveRequest(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.requestIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "request not found")
		return
	}
	s.requests[i].Status = catalog.RequestDelivered
	writeJSON(w, http.StatusOK, map[string]int{"modifiedCount": 1})
}

func (s *Server) deleteRequest(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.requestIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "request not found")
		return
	}
	s.requests = slices.Delete(s.requests, i, i+1)
	writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}
