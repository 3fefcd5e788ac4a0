package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultWhatsAppFrom = "whatsapp:+14155238886"
	defaultWhatsAppTo   = "whatsapp:+919043479513"
)

type Config struct {
	AppPort           string
	AppEnv            string
	SessionSecret     string
	RazorpayKeyID     string
	RazorpayKeySecret string
	TwilioAccountSID  string
	TwilioAuthToken   string
	WhatsAppFrom      string
	WhatsAppTo        string
}

// LoadConfig reads process configuration once at startup. Missing payment
// or messaging credentials only degrade those features; every other route
// keeps working.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		WhatsAppFrom:      os.Getenv("TWILIO_WHATSAPP_FROM"),
		WhatsAppTo:        os.Getenv("CAFE_OWNER_WHATSAPP"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Println("WARN: SESSION_SECRET not set, using insecure default")
		cfg.SessionSecret = "default_secret_key"
	}
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		log.Println("WARN: Razorpay credentials not set, checkout will fail")
	}
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		log.Println("WARN: Twilio credentials not set, owner notifications disabled")
	}
	if cfg.WhatsAppFrom == "" {
		cfg.WhatsAppFrom = defaultWhatsAppFrom
	}
	if cfg.WhatsAppTo == "" {
		cfg.WhatsAppTo = defaultWhatsAppTo
	}

	return cfg
}
