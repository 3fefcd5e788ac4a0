package menu

import (
	"sort"
	"strings"
)

const defaultCategoryImage = "images/categories/combo.jpg"

var categoryImages = map[string]string{
	"Combos":                   "images/categories/combo.jpg",
	"Burger":                   "images/categories/delicious-burger.jpg",
	"Dessert & Ice Cream":      "images/categories/desser-ice.jpg",
	"Fresh Juice":              "images/categories/fresh-juice.jpg",
	"Milkshake":                "images/categories/milkshake.jpg",
	"Mojito":                   "images/categories/mojito_cover.jpg",
	"Momos - Non-Veg":          "images/categories/momos-nonveg.jpg",
	"Momos - Veg":              "images/categories/momos-veg.jpg",
	"Pizza - Non-Veg":          "images/categories/pizza-non veg.jpg",
	"Pizza - Veg":              "images/categories/pizza-veg.jpg",
	"Sandwich - Non-Veg":       "images/categories/sandwich.jpg",
	"Sandwich - Veg":           "images/categories/veg-sandwich.jpg",
	"Ice Cream (Single Scoop)": "images/categories/single-scoop.jpg",
	"Starters - Veg":           "images/categories/starters-veg.jpg",
}

// Catalog exposes read-only queries over the static menu.
type Catalog struct {
	items []Item
}

func NewCatalog() *Catalog {
	return &Catalog{items: menuItems}
}

// Categories returns the distinct categories with their display images,
// sorted by name. Categories without a mapped image get the default one.
func (c *Catalog) Categories() []Category {
	seen := make(map[string]bool)
	var out []Category
	for _, it := range c.items {
		if seen[it.Category] {
			continue
		}
		seen[it.Category] = true

		img, ok := categoryImages[it.Category]
		if !ok {
			img = defaultCategoryImage
		}
		out = append(out, Category{Name: it.Category, Image: img})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ItemsByCategory returns the items of a category, matched
// case-insensitively.
func (c *Catalog) ItemsByCategory(name string) []Item {
	var out []Item
	for _, it := range c.items {
		if strings.EqualFold(it.Category, name) {
			out = append(out, it)
		}
	}
	return out
}
