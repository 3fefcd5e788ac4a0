package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chaicart-be/internal/cart"
	"chaicart-be/internal/feedback"
	"chaicart-be/internal/logger"
	"chaicart-be/internal/menu"
	"chaicart-be/internal/middleware"
	"chaicart-be/internal/order"
	"chaicart-be/internal/session"
)

// Handler bundles the services the routes need.
type Handler struct {
	Catalog     *menu.Catalog
	CartSvc     cart.Service
	OrderSvc    order.Service
	FeedbackSvc feedback.Service
}

// NewRouter wires middleware and routes. templatesGlob may be empty when
// the HTML views are not needed (tests).
func NewRouter(h *Handler, codec *session.Codec, templatesGlob string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestID())
	r.Use(logger.Logging())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RateLimit())
	r.Use(SessionMiddleware(codec))

	if templatesGlob != "" {
		r.LoadHTMLGlob(templatesGlob)
	}
	r.Static("/static", "./web/static")

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"alive": true})
	})

	r.GET("/", h.Index)
	r.GET("/menu", h.Menu)
	r.GET("/menu/:category", h.Items)
	r.GET("/cart", h.CartView)
	r.GET("/checkout", h.CheckoutView)
	r.POST("/api/save-cart", h.SaveCart)

	pay := r.Group("/", middleware.RateLimitStrict())
	pay.POST("/create-order", h.CreateOrder)
	pay.POST("/payment-success-verify", h.PaymentSuccessVerify)

	r.GET("/payment-success", h.PaymentSuccessPage)
	r.GET("/receipt", h.Receipt)
	r.GET("/feedback", h.FeedbackView)
	r.POST("/submit-feedback", h.SubmitFeedback)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"message": "Page not found"})
	})

	return r
}
