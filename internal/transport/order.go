package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chaicart-be/internal/order"
	"chaicart-be/internal/payment"
)

// CreateOrder builds the order from the session cart and the checkout
// form, and creates the gateway order the payment widget needs.
func (h *Handler) CreateOrder(c *gin.Context) {
	input := order.CheckoutInput{
		Name:       c.PostForm("name"),
		Phone:      c.PostForm("phone"),
		PickupDate: c.PostForm("pickup_date"),
		PickupTime: c.PostForm("pickup_time"),
		Notes:      c.PostForm("notes"),
	}

	res, err := h.OrderSvc.Checkout(c.Request.Context(), sessionID(c), input)
	if err != nil {
		var vErr *order.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		case errors.Is(err, order.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

// PaymentSuccessVerify handles the widget's payment-success callback. The
// notification outcome never changes the response status.
func (h *Handler) PaymentSuccessVerify(c *gin.Context) {
	var cb order.PaymentCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	notified, err := h.OrderSvc.Confirm(c.Request.Context(), sessionID(c), cb)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNoPendingOrder):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No order data found"})
		case errors.Is(err, payment.ErrInvalidSignature):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid payment signature"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"whatsapp_sent": notified,
	})
}

func (h *Handler) PaymentSuccessPage(c *gin.Context) {
	name := "Customer"
	if o := h.OrderSvc.Receipt(c.Request.Context(), sessionID(c)); o != nil {
		name = o.Name
	}
	c.HTML(http.StatusOK, "payment_success.html", gin.H{"customer_name": name})
}

// Receipt renders the session's order, or the empty state when there is
// none.
func (h *Handler) Receipt(c *gin.Context) {
	o := h.OrderSvc.Receipt(c.Request.Context(), sessionID(c))
	c.HTML(http.StatusOK, "receipt.html", gin.H{"order": o})
}
