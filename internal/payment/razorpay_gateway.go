package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"chaicart-be/internal/logger"

	"go.uber.org/zap"
)

const razorpayBaseURL = "https://api.razorpay.com"

type razorpayGateway struct {
	keyID      string
	keySecret  string
	httpClient *http.Client
}

// NewRazorpayGateway builds the Razorpay adapter. Missing credentials are
// reported loudly here and fail every CreateOrder call; other routes keep
// working.
func NewRazorpayGateway(keyID, keySecret string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty, order creation will fail")
	}

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", amount),
		zap.String("currency", currency),
		zap.String("receipt", receipt),
	)

	if g.keyID == "" || g.keySecret == "" {
		log.Error("Razorpay credentials missing")
		return nil, &GatewayError{Op: "create order", Err: ErrMissingCredentials}
	}

	body := map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, &GatewayError{Op: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", razorpayBaseURL+"/v1/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, &GatewayError{Op: "build request", Err: err}
	}

	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Add("Content-Type", "application/json")

	log.Info("creating Razorpay order")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Razorpay request failed", zap.Error(err))
		return nil, &GatewayError{Op: "create order", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read Razorpay response", zap.Error(err))
		return nil, &GatewayError{Op: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Razorpay returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, &GatewayError{Op: "create order", Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))}
	}

	var order GatewayOrder
	if err := json.Unmarshal(bodyBytes, &order); err != nil {
		log.Error("failed decoding Razorpay response", zap.Error(err))
		return nil, &GatewayError{Op: "decode response", Err: err}
	}
	if order.ID == "" {
		return nil, &GatewayError{Op: "decode response", Err: fmt.Errorf("response has no order id")}
	}

	log.Info("Razorpay order created",
		zap.String("order_id", order.ID),
		zap.String("status", order.Status),
	)

	return &order, nil
}

// VerifyPaymentSignature checks Razorpay's HMAC-SHA256 over
// "<order_id>|<payment_id>" signed with the key secret. Skipped when no
// secret is configured (dev).
func (g *razorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) error {
	if g.keySecret == "" {
		return nil
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

func (g *razorpayGateway) Key() string {
	return g.keyID
}
