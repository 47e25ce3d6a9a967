package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Category is a meal category. Comparison is case-insensitive.
type Category string

const (
	CategoryAll Category = "All"
	Breakfast   Category = "Breakfast"
	Lunch       Category = "Lunch"
	Dinner      Category = "Dinner"
	Snack       Category = "Snack"
)

// Categories lists the real categories in menu order.
func Categories() []Category {
	return []Category{Breakfast, Lunch, Dinner, Snack}
}

// ParseCategory resolves s to a known category. An empty string or "all"
// resolves to CategoryAll.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Matches reports whether a meal tagged with category belongs to c.
func (c Category) Matches(category string) bool {
	if c == CategoryAll {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(category), string(c))
}

type Review struct {
	ID        string    `json:"_id,omitempty"`
	MealID    string    `json:"mealId,omitempty"`
	MealTitle string    `json:"mealTitle,omitempty"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	Review    string    `json:"review"`
	Date      time.Time `json:"date"`
	Likes     int       `json:"likes,omitempty"`
}

type Meal struct {
	ID               string    `json:"_id,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Ingredients      string    `json:"ingredients,omitempty"`
	Category         string    `json:"category"`
	Price            float64   `json:"price"`
	Image            string    `json:"image"`
	Rating           float64   `json:"rating"`
	Likes            int       `json:"likes"`
	LikedBy          []string  `json:"likedBy"`
	Reviews          []Review  `json:"reviews"`
	ReviewsCount     int       `json:"reviews_count"`
	PostTime         time.Time `json:"post_time"`
	DistributorName  string    `json:"distributor_name,omitempty"`
	DistributorEmail string    `json:"distributor_email,omitempty"`
}

// LikedByUser reports whether userID is in the last fetched liker set.
func (m Meal) LikedByUser(userID string) bool {
	return containsFold(m.LikedBy, userID)
}

// UpcomingMeal is a candidate for the catalog. Its likes only rank it.
type UpcomingMeal struct {
	ID               string    `json:"_id,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Ingredients      string    `json:"ingredients,omitempty"`
	Image            string    `json:"image"`
	Likes            int       `json:"likes"`
	LikedBy          []string  `json:"likedBy"`
	Reviews          []Review  `json:"reviews"`
	ReviewsCount     int       `json:"reviews_count"`
	PostTime         time.Time `json:"post_time"`
	DistributorName  string    `json:"distributor_name,omitempty"`
	DistributorEmail string    `json:"distributor_email,omitempty"`
}

func (m UpcomingMeal) LikedByUser(userID string) bool {
	return containsFold(m.LikedBy, userID)
}

const RoleAdmin = "admin"

type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
	Badge string `json:"badge,omitempty"`
	Role  string `json:"role,omitempty"`
}

// IsAdmin accepts both "admin" and "Admin" as stored by older records.
func (u User) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(u.Role), RoleAdmin)
}

const (
	RequestPending   = "pending"
	RequestDelivered = "delivered"
)

type MealRequest struct {
	ID           string    `json:"_id,omitempty"`
	MealID       string    `json:"mealId"`
	Title        string    `json:"title"`
	UserEmail    string    `json:"userEmail"`
	UserName     string    `json:"userName"`
	Likes        int       `json:"likes"`
	ReviewsCount int       `json:"reviews_count"`
	Status       string    `json:"status"`
	RequestedAt  time.Time `json:"requestedAt"`
}

func (r MealRequest) Delivered() bool {
	return strings.EqualFold(r.Status, RequestDelivered)
}

type Payment struct {
	ID            string    `json:"_id,omitempty"`
	Email         string    `json:"email"`
	PackageName   string    `json:"packageName"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status,omitempty"`
	Date          time.Time `json:"date"`
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}
