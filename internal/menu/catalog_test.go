package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Categories(t *testing.T) {
	c := NewCatalog()

	cats := c.Categories()
	assert.NotEmpty(t, cats)

	t.Run("Distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, cat := range cats {
			assert.False(t, seen[cat.Name], "duplicate category %s", cat.Name)
			seen[cat.Name] = true
		}
	})

	t.Run("MappedImage", func(t *testing.T) {
		for _, cat := range cats {
			if cat.Name == "Pizza - Veg" {
				assert.Equal(t, "images/categories/pizza-veg.jpg", cat.Image)
				return
			}
		}
		t.Fatal("Pizza - Veg category missing")
	})

	t.Run("DefaultImageWhenUnmapped", func(t *testing.T) {
		c := &Catalog{items: []Item{{Name: "Filter Coffee", Category: "Hot Beverages", Price: 40}}}
		cats := c.Categories()
		assert.Len(t, cats, 1)
		assert.Equal(t, defaultCategoryImage, cats[0].Image)
	})
}

func TestCatalog_ItemsByCategory(t *testing.T) {
	c := NewCatalog()

	t.Run("CaseInsensitive", func(t *testing.T) {
		lower := c.ItemsByCategory("pizza - veg")
		mixed := c.ItemsByCategory("Pizza - Veg")
		assert.NotEmpty(t, lower)
		assert.Equal(t, mixed, lower)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		assert.Empty(t, c.ItemsByCategory("Sushi"))
	})
}
