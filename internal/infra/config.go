package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	GeoIPDBPath string

	OpenAIAPIKey   string
	OpenAIModel    string
	DetectionModel string
	LegacyModel    string
	WhisperModel   string
	OpenAIBaseURL  string

	StripeSecretKey      string
	StripePublishableKey string
	StripePriceID        string
	StripeWebhookSecret  string
	CheckoutSuccessPath  string
	CheckoutCancelPath   string

	FreeTranslationLimit int
	AllowedOrigins       []string
	HTTPReadTimeout      time.Duration
	HTTPWriteTimeout     time.Duration
	HTTPIdleTimeout      time.Duration
	RateLimitPerMin      int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. Only the values the server cannot boot without are
// required here; provider credentials are validated by the components that
// use them so their absence yields a descriptive configuration error at the
// call site instead of a generic boot failure.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		GeoIPDBPath: os.Getenv("GEOIP_DB_PATH"),

		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4"),
		DetectionModel: getEnv("OPENAI_DETECTION_MODEL", "gpt-4"),
		LegacyModel:    getEnv("OPENAI_LEGACY_MODEL", "gpt-3.5-turbo"),
		WhisperModel:   getEnv("OPENAI_WHISPER_MODEL", "whisper-1"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),

		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		StripePriceID:        os.Getenv("STRIPE_PRICE_ID"),
		StripeWebhookSecret:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		CheckoutSuccessPath:  getEnv("CHECKOUT_SUCCESS_PATH", "/?success=true"),
		CheckoutCancelPath:   getEnv("CHECKOUT_CANCEL_PATH", "/?canceled=true"),

		FreeTranslationLimit: getEnvInt("FREE_TRANSLATION_LIMIT", 100),
		AllowedOrigins:       splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		HTTPReadTimeout:      time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:     time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 60)),
		HTTPIdleTimeout:      time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:      getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.FreeTranslationLimit <= 0 {
		return nil, fmt.Errorf("FREE_TRANSLATION_LIMIT must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
