package order

import (
	"context"
	"testing"
	"time"

	"chaicart-be/internal/cart"
	"chaicart-be/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSessions is a mock implementation of the Sessions interface
type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Cart(sessionID string) []cart.Line {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]cart.Line)
}

func (m *MockSessions) SetOrder(sessionID string, o *Order) {
	m.Called(sessionID, o)
}

func (m *MockSessions) Order(sessionID string) *Order {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*Order)
}

// MockGateway is a mock implementation of payment.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.GatewayOrder, error) {
	args := m.Called(ctx, amount, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.GatewayOrder), args.Error(1)
}

func (m *MockGateway) VerifyPaymentSignature(orderID, paymentID, signature string) error {
	args := m.Called(orderID, paymentID, signature)
	return args.Error(0)
}

func (m *MockGateway) Key() string {
	args := m.Called()
	return args.String(0)
}

// MockNotifier is a mock implementation of the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, o *Order) bool {
	args := m.Called(ctx, o)
	return args.Bool(0)
}

func testCart() []cart.Line {
	return []cart.Line{
		{Name: "Coffee", Price: 150, Quantity: 2},
		{Name: "Cake", Price: 200, Quantity: 1},
	}
}

func testInput() CheckoutInput {
	return CheckoutInput{
		Name:       "Asha",
		Phone:      "+919876543210",
		PickupDate: "2026-08-28",
		PickupTime: "17:30",
		Notes:      "less sugar",
	}
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("TotalAndMinorUnits", func(t *testing.T) {
		sessions := new(MockSessions)
		gateway := new(MockGateway)
		svc := NewService(sessions, gateway, new(MockNotifier))

		sessions.On("Cart", "sid-1").Return(testCart())
		gateway.On("CreateOrder", ctx, int64(50000), "INR", "order_rcptid_11").
			Return(&payment.GatewayOrder{ID: "order_abc", Amount: 50000, Currency: "INR"}, nil)
		gateway.On("Key").Return("rzp_test_key")
		sessions.On("SetOrder", "sid-1", mock.MatchedBy(func(o *Order) bool {
			return o.Total == 500.00 && len(o.Items) == 2 && o.OrderTime == ""
		})).Return()

		res, err := svc.Checkout(ctx, "sid-1", testInput())
		assert.NoError(t, err)
		assert.Equal(t, "order_abc", res.OrderID)
		assert.Equal(t, int64(50000), res.Amount)
		assert.Equal(t, "rzp_test_key", res.Key)
		sessions.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})

	t.Run("FractionalPriceRounding", func(t *testing.T) {
		sessions := new(MockSessions)
		gateway := new(MockGateway)
		svc := NewService(sessions, gateway, new(MockNotifier))

		sessions.On("Cart", "sid-1").Return([]cart.Line{{Name: "Half Chai", Price: 10.05, Quantity: 3}})
		gateway.On("CreateOrder", ctx, int64(3015), "INR", "order_rcptid_11").
			Return(&payment.GatewayOrder{ID: "order_x"}, nil)
		gateway.On("Key").Return("k")
		sessions.On("SetOrder", "sid-1", mock.Anything).Return()

		res, err := svc.Checkout(ctx, "sid-1", testInput())
		assert.NoError(t, err)
		assert.Equal(t, int64(3015), res.Amount)
	})

	t.Run("MissingNameFailsBeforeGateway", func(t *testing.T) {
		sessions := new(MockSessions)
		gateway := new(MockGateway)
		svc := NewService(sessions, gateway, new(MockNotifier))

		input := testInput()
		input.Name = ""

		res, err := svc.Checkout(ctx, "sid-1", input)
		assert.Nil(t, res)

		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "name")
		gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AllFieldsMissing", func(t *testing.T) {
		svc := NewService(new(MockSessions), new(MockGateway), new(MockNotifier))

		_, err := svc.Checkout(ctx, "sid-1", CheckoutInput{})

		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{"name", "phone", "pickup_date", "pickup_time"}, vErr.Fields)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		sessions := new(MockSessions)
		gateway := new(MockGateway)
		svc := NewService(sessions, gateway, new(MockNotifier))

		sessions.On("Cart", "sid-1").Return(nil)

		_, err := svc.Checkout(ctx, "sid-1", testInput())
		assert.ErrorIs(t, err, ErrEmptyCart)
		gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("GatewayFailureWritesNoOrder", func(t *testing.T) {
		sessions := new(MockSessions)
		gateway := new(MockGateway)
		svc := NewService(sessions, gateway, new(MockNotifier))

		sessions.On("Cart", "sid-1").Return(testCart())
		gateway.On("CreateOrder", ctx, int64(50000), "INR", "order_rcptid_11").
			Return(nil, &payment.GatewayError{Op: "create order", Err: assert.AnError})

		res, err := svc.Checkout(ctx, "sid-1", testInput())
		assert.Nil(t, res)

		var gwErr *payment.GatewayError
		assert.ErrorAs(t, err, &gwErr)
		sessions.AssertNotCalled(t, "SetOrder", mock.Anything, mock.Anything)
	})
}

func TestService_Confirm(t *testing.T) {
	ctx := context.Background()

	cb := PaymentCallback{
		OrderID:   "order_abc",
		PaymentID: "pay_123",
		Signature: "sig",
	}

	pending := func() *Order {
		return &Order{
			Name:       "Asha",
			Phone:      "+919876543210",
			PickupDate: "2026-08-28",
			PickupTime: "17:30",
			Items:      testCart(),
			Total:      500,
		}
	}

	t.Run("StampsTimeAndNotifies", func(t *testing.T) {
		sessions := new(MockSessions)
		gateway := new(MockGateway)
		notifier := new(MockNotifier)
		svc := NewService(sessions, gateway, notifier)

		o := pending()
		sessions.On("Order", "sid-1").Return(o)
		gateway.On("VerifyPaymentSignature", "order_abc", "pay_123", "sig").Return(nil)
		sessions.On("SetOrder", "sid-1", mock.MatchedBy(func(saved *Order) bool {
			if saved.OrderTime == "" {
				return false
			}
			_, err := time.Parse(orderTimeLayout, saved.OrderTime)
			return err == nil
		})).Return()
		notifier.On("Send", ctx, o).Return(true)

		notified, err := svc.Confirm(ctx, "sid-1", cb)
		assert.NoError(t, err)
		assert.True(t, notified)
		sessions.AssertExpectations(t)
	})

	t.Run("NoPendingOrder", func(t *testing.T) {
		sessions := new(MockSessions)
		notifier := new(MockNotifier)
		svc := NewService(sessions, new(MockGateway), notifier)

		sessions.On("Order", "sid-1").Return(nil)

		notified, err := svc.Confirm(ctx, "sid-1", cb)
		assert.ErrorIs(t, err, ErrNoPendingOrder)
		assert.False(t, notified)
		notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		sessions := new(MockSessions)
		gateway := new(MockGateway)
		notifier := new(MockNotifier)
		svc := NewService(sessions, gateway, notifier)

		sessions.On("Order", "sid-1").Return(pending())
		gateway.On("VerifyPaymentSignature", "order_abc", "pay_123", "sig").
			Return(payment.ErrInvalidSignature)

		notified, err := svc.Confirm(ctx, "sid-1", cb)
		assert.ErrorIs(t, err, payment.ErrInvalidSignature)
		assert.False(t, notified)
		sessions.AssertNotCalled(t, "SetOrder", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("NotificationFailureStillConfirms", func(t *testing.T) {
		sessions := new(MockSessions)
		gateway := new(MockGateway)
		notifier := new(MockNotifier)
		svc := NewService(sessions, gateway, notifier)

		o := pending()
		sessions.On("Order", "sid-1").Return(o)
		gateway.On("VerifyPaymentSignature", "order_abc", "pay_123", "sig").Return(nil)
		sessions.On("SetOrder", "sid-1", mock.Anything).Return()
		notifier.On("Send", ctx, o).Return(false)

		notified, err := svc.Confirm(ctx, "sid-1", cb)
		assert.NoError(t, err)
		assert.False(t, notified)
	})
}

func TestService_Receipt(t *testing.T) {
	ctx := context.Background()

	t.Run("NoOrder", func(t *testing.T) {
		sessions := new(MockSessions)
		svc := NewService(sessions, new(MockGateway), new(MockNotifier))

		sessions.On("Order", "sid-1").Return(nil)
		assert.Nil(t, svc.Receipt(ctx, "sid-1"))
	})

	t.Run("OrderWithoutName", func(t *testing.T) {
		sessions := new(MockSessions)
		svc := NewService(sessions, new(MockGateway), new(MockNotifier))

		sessions.On("Order", "sid-1").Return(&Order{Total: 100})
		assert.Nil(t, svc.Receipt(ctx, "sid-1"))
	})

	t.Run("Idempotent", func(t *testing.T) {
		sessions := new(MockSessions)
		svc := NewService(sessions, new(MockGateway), new(MockNotifier))

		o := &Order{Name: "Asha", Total: 500, OrderTime: "2026-08-28 17:45:00"}
		sessions.On("Order", "sid-1").Return(o)

		first := svc.Receipt(ctx, "sid-1")
		second := svc.Receipt(ctx, "sid-1")
		assert.Equal(t, first, second)
		assert.Equal(t, o, first)
	})
}
