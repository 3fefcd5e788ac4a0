package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPendingOrder means the session expired or the confirmation
	// arrived before any checkout.
	ErrNoPendingOrder = errors.New("no pending order in session")

	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError lists the checkout form fields that are missing. The
// caller re-prompts the user; no gateway call has been made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
