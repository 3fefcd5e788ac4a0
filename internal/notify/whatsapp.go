package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chaicart-be/internal/logger"
	"chaicart-be/internal/order"

	"go.uber.org/zap"
)

const twilioBaseURL = "https://api.twilio.com"

// WhatsAppNotifier sends the order summary to the café owner through the
// Twilio Messages API. Fire-and-forget: no retry, no queue, no delivery
// tracking beyond the immediate API response.
type WhatsAppNotifier struct {
	accountSID string
	authToken  string
	from       string
	to         string
	httpClient *http.Client
}

func NewWhatsAppNotifier(accountSID, authToken, from, to string) *WhatsAppNotifier {
	if accountSID == "" || authToken == "" {
		logger.L().Warn("Twilio credentials are empty, notifications will be skipped")
	}

	return &WhatsAppNotifier{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		to:         to,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Send delivers the order summary. It never returns an error: missing
// credentials, network failures, and API rejections are all logged and
// reduced to false so the payment path stays unaffected.
func (n *WhatsAppNotifier) Send(ctx context.Context, o *order.Order) bool {
	log := logger.FromCtx(ctx).With(
		zap.String("customer", o.Name),
		zap.String("to", n.to),
	)

	if n.accountSID == "" || n.authToken == "" {
		log.Error("Twilio credentials not configured, skipping notification")
		return false
	}

	form := url.Values{}
	form.Set("From", n.from)
	form.Set("To", n.to)
	form.Set("Body", formatMessage(o))

	endpoint := twilioBaseURL + "/2010-04-01/Accounts/" + n.accountSID + "/Messages.json"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Error("failed building Twilio request", zap.Error(err))
		return false
	}

	req.SetBasicAuth(n.accountSID, n.authToken)
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Error("Twilio request failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed reading Twilio response", zap.Error(err))
		return false
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Twilio rejected the message",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return false
	}

	var res struct {
		SID string `json:"sid"`
	}
	_ = json.Unmarshal(bodyBytes, &res)

	log.Info("WhatsApp notification sent", zap.String("message_sid", res.SID))
	return true
}
