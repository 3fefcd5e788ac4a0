package order

import "chaicart-be/internal/cart"

// Order is the assembled checkout record for one payment session. It is
// built at checkout submission and mutated once, when the payment
// confirmation stamps OrderTime.
type Order struct {
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	PickupDate string      `json:"pickup_date"`
	PickupTime string      `json:"pickup_time"`
	Notes      string      `json:"notes"`
	Items      []cart.Line `json:"items"`
	Total      float64     `json:"total"`

	// OrderTime is empty until the payment is confirmed.
	OrderTime string `json:"order_time,omitempty"`
}

// CheckoutInput carries the checkout form fields. Notes is optional.
type CheckoutInput struct {
	Name       string
	Phone      string
	PickupDate string
	PickupTime string
	Notes      string
}

// CheckoutResult is what the client needs to open the payment widget.
type CheckoutResult struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Key     string `json:"key"`
}

// PaymentCallback is the payload the gateway widget hands the client
// after a successful payment.
type PaymentCallback struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
