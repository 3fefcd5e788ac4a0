package cart

// Line is one selected item in a cart. Uniqueness of the name within a
// cart is assumed, not enforced.
type Line struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
