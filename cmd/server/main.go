package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaicart-be/internal/cart"
	"chaicart-be/internal/config"
	"chaicart-be/internal/feedback"
	"chaicart-be/internal/logger"
	"chaicart-be/internal/menu"
	"chaicart-be/internal/notify"
	"chaicart-be/internal/order"
	"chaicart-be/internal/payment"
	"chaicart-be/internal/session"
	"chaicart-be/internal/transport"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := menu.NewCatalog()
	sessions := session.NewStore()
	codec := session.NewCodec(cfg.SessionSecret)

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	notifier := notify.NewWhatsAppNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.WhatsAppFrom, cfg.WhatsAppTo)

	cartSvc := cart.NewService(sessions)
	orderSvc := order.NewService(sessions, gateway, notifier)
	feedbackSvc := feedback.NewService()

	router := transport.NewRouter(&transport.Handler{
		Catalog:     catalog,
		CartSvc:     cartSvc,
		OrderSvc:    orderSvc,
		FeedbackSvc: feedbackSvc,
	}, codec, "web/templates/*.html")

	srv := transport.NewServer(":"+cfg.AppPort, router)

	go func() {
		logger.L().Info("server started", zap.String("port", cfg.AppPort))
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	if err := srv.Shutdown(10 * time.Second); err != nil {
		logger.L().Error("shutdown failed", zap.Error(err))
	}
}
