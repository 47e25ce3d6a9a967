package membership

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultBadge is assigned to every user when they join.
const DefaultBadge = "Bronze"

var ErrInvalidPackage = errors.New("invalid package")

// Package is a purchasable membership tier.
type Package struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Price      string   `json:"price"`
	PriceCents int      `json:"price_cents"`
	Benefits   []string `json:"benefits"`
	Emoji      string   `json:"emoji"`
}

// Badge is the badge a user holds after buying p.
func (p Package) Badge() string {
	return p.Name
}

var packages = []Package{
	{
		Key:        "silver",
		Name:       "Silver",
		Price:      "$9.99/month",
		PriceCents: 999,
		Benefits:   []string{"Basic support", "Access to standard features"},
		Emoji:      "🥈",
	},
	{
		Key:        "gold",
		Name:       "Gold",
		Price:      "$19.99/month",
		PriceCents: 1999,
		Benefits:   []string{"Priority support", "All Silver features", "Early access to new features"},
		Emoji:      "🥇",
	},
	{
		Key:        "platinum",
		Name:       "Platinum",
		Price:      "$29.99/month",
		PriceCents: 2999,
		Benefits:   []string{"24/7 VIP support", "All Gold features", "Exclusive content & updates"},
		Emoji:      "💎",
	},
}

// All returns the tiers from cheapest to most expensive.
func All() []Package {
	out := make([]Package, len(packages))
	copy(out, packages)
	return out
}

// Lookup resolves a package name case-insensitively. Anything other than the
// three known tiers is ErrInvalidPackage.
func Lookup(name string) (Package, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range packages {
		if p.Key == key {
			return p, nil
		}
	}
	return Package{}, fmt.Errorf("%w: %q", ErrInvalidPackage, name)
}

func IsValid(name string) bool {
	_, err := Lookup(name)
	return err == nil
}
