package payment

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("payment gateway credentials not configured")
	ErrInvalidSignature   = errors.New("invalid payment signature")
)

// GatewayError wraps any failure talking to the payment gateway. It is
// fatal to the current checkout and must be surfaced to the user.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
