package config

import (
	"os"
	"strconv"
	"time"
)

const (
	phonePeSandboxURL    = "https://api-preprod.phonepe.com/apis/pg-sandbox"
	phonePeProductionURL = "https://api.phonepe.com/apis/hermes"
)

type PhonePeConfig struct {
	MerchantID string
	SaltKey    string
	SaltIndex  string
	BaseURL    string
	Timeout    time.Duration
}

// Configured reports whether all gateway secrets are present. The server
// boots without them; payment endpoints fail with a config error instead.
func (c PhonePeConfig) Configured() bool {
	return c.MerchantID != "" && c.SaltKey != "" && c.SaltIndex != "" && c.BaseURL != ""
}

type AvailabilityConfig struct {
	BaseURL string
	Timeout time.Duration
}

func (c AvailabilityConfig) Configured() bool { return c.BaseURL != "" }

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

func (c SMTPConfig) Configured() bool { return c.Host != "" && c.Port != "" }

type Config struct {
	Port          string
	PublicBaseURL string // used to build gateway callback links
	DBDSN         string

	PhonePe      PhonePeConfig
	Availability AvailabilityConfig

	SMTP         SMTPConfig
	MailFrom     string
	MailFromName string
}

func FromEnv() Config {
	timeout := durationSeconds("HTTP_CLIENT_TIMEOUT_SECONDS", 15*time.Second)

	gatewayURL := os.Getenv("PHONEPE_BASE_URL")
	if gatewayURL == "" {
		if envOr("PHONEPE_ENV", "sandbox") == "production" {
			gatewayURL = phonePeProductionURL
		} else {
			gatewayURL = phonePeSandboxURL
		}
	}

	return Config{
		Port:          envOr("PORT", "8080"),
		PublicBaseURL: envOr("PUBLIC_BASE_URL", "http://localhost:8080"),
		DBDSN:         os.Getenv("DB_DSN"),

		PhonePe: PhonePeConfig{
			MerchantID: os.Getenv("PHONEPE_MERCHANT_ID"),
			SaltKey:    os.Getenv("PHONEPE_SALT_KEY"),
			SaltIndex:  os.Getenv("PHONEPE_SALT_INDEX"),
			BaseURL:    gatewayURL,
			Timeout:    timeout,
		},
		Availability: AvailabilityConfig{
			BaseURL: os.Getenv("AVAILABILITY_SERVICE_URL"),
			Timeout: timeout,
		},

		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          envOr("SMTP_PORT", "587"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       envOr("SMTP_TLS_MODE", "starttls"),
			SkipVerifyTLS: os.Getenv("SMTP_SKIP_VERIFY_TLS") == "true",
		},
		MailFrom:     envOr("MAIL_FROM", "no-reply@tenclub.in"),
		MailFromName: envOr("MAIL_FROM_NAME", "tenclub"),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationSeconds(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
