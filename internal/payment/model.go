package payment

import "context"

// GatewayOrder is the payment order created on the gateway side. It is
// returned to the client so it can open the payment widget and is never
// persisted beyond the request.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway wraps the third-party payment-order API.
type Gateway interface {
	// CreateOrder registers a payment order for the given amount in minor
	// units (paise). No retry, no caching.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error)

	// VerifyPaymentSignature checks the signature the gateway hands to the
	// client after a successful payment.
	VerifyPaymentSignature(orderID, paymentID, signature string) error

	// Key returns the public key id the client widget needs.
	Key() string
}
