package catalog

import (
	"slices"
	"strings"
)

// FilterByCategory keeps the meals in category. The result is never nil.
func FilterByCategory(meals []Meal, category Category) []Meal {
	out := make([]Meal, 0, len(meals))
	for _, m := range meals {
		if category.Matches(m.Category) {
			out = append(out, m)
		}
	}
	return out
}

// Preview returns at most n meals of category, in catalog order.
func Preview(meals []Meal, category Category, n int) []Meal {
	out := FilterByCategory(meals, category)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Search keeps meals whose title, description or ingredients contain term.
func Search(meals []Meal, term string) []Meal {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return meals
	}
	out := make([]Meal, 0, len(meals))
	for _, m := range meals {
		if strings.Contains(strings.ToLower(m.Title), term) ||
			strings.Contains(strings.ToLower(m.Description), term) ||
			strings.Contains(strings.ToLower(m.Ingredients), term) {
			out = append(out, m)
		}
	}
	return out
}

// SearchUsers matches name or email, case-insensitively.
func SearchUsers(users []User, term string) []User {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return users
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out
}

// RankUpcoming sorts by likes, most liked first. Ties keep their order.
func RankUpcoming(meals []UpcomingMeal) []UpcomingMeal {
	out := slices.Clone(meals)
	if out == nil {
		out = []UpcomingMeal{}
	}
	slices.SortStableFunc(out, func(a, b UpcomingMeal) int {
		return b.Likes - a.Likes
	})
	return out
}
