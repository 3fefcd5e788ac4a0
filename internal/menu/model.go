package menu

// Item is a single menu entry. The menu is statically defined and never
// mutated at runtime.
type Item struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Category is a menu section with its display image.
type Category struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
