package order

import (
	"context"
	"math"
	"time"

	"chaicart-be/internal/cart"
	"chaicart-be/internal/logger"
	"chaicart-be/internal/payment"

	"go.uber.org/zap"
)

const (
	currencyINR     = "INR"
	receiptID       = "order_rcptid_11"
	orderTimeLayout = "2006-01-02 15:04:05"
)

// Sessions is the session-scoped order slot. One slot per session: the
// checkout target first, the receipt source after confirmation.
// Implemented by session.Store.
type Sessions interface {
	Cart(sessionID string) []cart.Line
	SetOrder(sessionID string, o *Order)
	Order(sessionID string) *Order
}

// Notifier sends the owner notification. It never fails the caller; the
// outcome is a bool. Implemented by notify.WhatsAppNotifier.
type Notifier interface {
	Send(ctx context.Context, o *Order) bool
}

// Service drives the order lifecycle: build and price an order at
// checkout, confirm it after payment, expose it for the receipt.
type Service interface {
	Checkout(ctx context.Context, sessionID string, input CheckoutInput) (*CheckoutResult, error)
	Confirm(ctx context.Context, sessionID string, cb PaymentCallback) (bool, error)
	Receipt(ctx context.Context, sessionID string) *Order
}

type service struct {
	sessions Sessions
	gateway  payment.Gateway
	notifier Notifier
}

func NewService(sessions Sessions, gateway payment.Gateway, notifier Notifier) Service {
	return &service{
		sessions: sessions,
		gateway:  gateway,
		notifier: notifier,
	}
}

// Checkout prices the session cart, creates the gateway order, and stores
// the assembled order in the session slot. The slot is only written after
// the gateway accepts the order, so a gateway failure leaves no order
// behind.
func (s *service) Checkout(ctx context.Context, sessionID string, input CheckoutInput) (*CheckoutResult, error) {
	log := logger.FromCtx(ctx).With(zap.String("session_id", sessionID))

	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Phone == "" {
		missing = append(missing, "phone")
	}
	if input.PickupDate == "" {
		missing = append(missing, "pickup_date")
	}
	if input.PickupTime == "" {
		missing = append(missing, "pickup_time")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	items := s.sessions.Cart(sessionID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	paise := int64(math.Round(total * 100))

	gwOrder, err := s.gateway.CreateOrder(ctx, paise, currencyINR, receiptID)
	if err != nil {
		log.Error("gateway order creation failed", zap.Error(err))
		return nil, err
	}

	s.sessions.SetOrder(sessionID, &Order{
		Name:       input.Name,
		Phone:      input.Phone,
		PickupDate: input.PickupDate,
		PickupTime: input.PickupTime,
		Notes:      input.Notes,
		Items:      items,
		Total:      total,
	})

	log.Info("order built",
		zap.Float64("total", total),
		zap.Int64("amount_paise", paise),
		zap.String("gateway_order_id", gwOrder.ID),
	)

	return &CheckoutResult{
		OrderID: gwOrder.ID,
		Amount:  paise,
		Key:     s.gateway.Key(),
	}, nil
}

// Confirm handles the client's payment-success callback: verify the
// gateway signature, stamp the order time, keep the order for the
// receipt, and fire the owner notification. The notification outcome is
// informational only and never fails the confirmation.
func (s *service) Confirm(ctx context.Context, sessionID string, cb PaymentCallback) (bool, error) {
	log := logger.FromCtx(ctx).With(zap.String("session_id", sessionID))

	o := s.sessions.Order(sessionID)
	if o == nil {
		log.Warn("payment confirmation without a pending order")
		return false, ErrNoPendingOrder
	}

	if err := s.gateway.VerifyPaymentSignature(cb.OrderID, cb.PaymentID, cb.Signature); err != nil {
		log.Error("payment signature rejected",
			zap.String("gateway_order_id", cb.OrderID),
			zap.Error(err),
		)
		return false, err
	}

	o.OrderTime = time.Now().Format(orderTimeLayout)
	s.sessions.SetOrder(sessionID, o)

	notified := s.notifier.Send(ctx, o)
	if notified {
		log.Info("owner notified", zap.String("customer", o.Name))
	} else {
		log.Warn("owner notification failed, payment still confirmed")
	}

	return notified, nil
}

// Receipt returns the session's order, or nil when there is none worth
// showing. Read-only and idempotent.
func (s *service) Receipt(ctx context.Context, sessionID string) *Order {
	o := s.sessions.Order(sessionID)
	if o == nil || o.Name == "" {
		return nil
	}
	return o
}
