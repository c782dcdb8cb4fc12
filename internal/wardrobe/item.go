// Package wardrobe defines the clothing item model, the outfit result type,
// and the per-category catalog view that outfit generation draws from.
package wardrobe

import (
	"fmt"
	"strings"
)

// Category classifies a clothing item by the role it can fill in an outfit.
type Category string

const (
	Top       Category = "Top"
	Bottom    Category = "Bottom"
	Dress     Category = "Dress"
	Outerwear Category = "Outerwear"
	Accessory Category = "Accessory"
	Shoes     Category = "Shoes"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Top, Bottom, Dress, Outerwear, Accessory, Shoes}
}

// ParseCategory maps a user-entered string to a Category, ignoring case.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Item is one wardrobe entry. Items are owned by the catalog and treated as
// immutable: generation and validation read them through pointers and never
// write fields.
type Item struct {
	ID        int64
	Category  Category
	Color     string // free-form, compared case-insensitively
	Pattern   string // "Solid" is the only pattern exempt from the mixing rule
	Formality string // Casual, Smart Casual, Semi-Formal, Formal
	PhotoPath string // relative to the closet photos directory
}
