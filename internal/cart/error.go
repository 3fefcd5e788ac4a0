package cart

import "errors"

var (
	ErrEmptyName       = errors.New("cart line has no item name")
	ErrNegativePrice   = errors.New("cart line price is negative")
	ErrInvalidQuantity = errors.New("cart line quantity must be positive")
)
