package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chaicart-be/internal/cart"
)

type saveCartRequest struct {
	Cart []cart.Line `json:"cart" binding:"required"`
}

func (h *Handler) CartView(c *gin.Context) {
	c.HTML(http.StatusOK, "cart.html", nil)
}

func (h *Handler) CheckoutView(c *gin.Context) {
	c.HTML(http.StatusOK, "checkout.html", nil)
}

// SaveCart syncs the client-side cart into the session.
func (h *Handler) SaveCart(c *gin.Context) {
	var req saveCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid cart data",
		})
		return
	}

	if err := h.CartSvc.Save(c.Request.Context(), sessionID(c), req.Cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart saved successfully",
	})
}
