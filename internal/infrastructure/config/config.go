package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPayPalBaseURL    = "https://api-m.sandbox.paypal.com"
	DefaultPort             = 8080
	DefaultOrderDescription = "First Presbyterian Church of Greenlawn Craig Schulman on Broadway"
	DefaultHealthMessage    = "running church API"
)

// DefaultAllowedOrigins are the storefront origins allowed to call the API.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://greenlawn-presbyterian-church-concert.netlify.app",
}

type TokenCacheBackend string

const (
	TokenCacheNone   TokenCacheBackend = "none"
	TokenCacheMemory TokenCacheBackend = "memory"
	TokenCacheRedis  TokenCacheBackend = "redis"
)

// PayPal holds provider credentials and endpoint settings.
type PayPal struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	// MockResponse is sent as the PayPal-Mock-Response header (sandbox negative testing).
	MockResponse string
	// Mock replaces the provider with synthetic responses.
	Mock bool
	// HTTPTimeout of zero leaves the transport default in place.
	HTTPTimeout time.Duration
}

type TokenCache struct {
	Backend       TokenCacheBackend
	RedisAddr     string
	RedisPassword string
}

// Config is read once at startup and is read-only afterwards.
type Config struct {
	Port             int
	AllowedOrigins   []string
	OrderDescription string
	HealthMessage    string
	PayPal           PayPal
	TokenCache       TokenCache
}

// Load builds a Config from environment variables.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - CORS_ALLOWED_ORIGINS (comma separated)
//   - ORDER_DESCRIPTION
//   - PAYPAL_CLIENT_ID / PAYPAL_CLIENT_SECRET
//   - PAYPAL_BASE_URL (default: sandbox)
//   - PAYPAL_MOCK, PAYPAL_MOCK_RESPONSE, PAYPAL_HTTP_TIMEOUT
//   - TOKEN_CACHE (none|memory|redis, default: memory)
//   - TOKEN_CACHE_REDIS_ADDR / TOKEN_CACHE_REDIS_PASSWORD
func Load() Config {
	return Config{
		Port:             getenvInt("PORT", DefaultPort),
		AllowedOrigins:   getenvList("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins),
		OrderDescription: getenvDefault("ORDER_DESCRIPTION", DefaultOrderDescription),
		HealthMessage:    DefaultHealthMessage,
		PayPal: PayPal{
			ClientID:     strings.TrimSpace(os.Getenv("PAYPAL_CLIENT_ID")),
			ClientSecret: strings.TrimSpace(os.Getenv("PAYPAL_CLIENT_SECRET")),
			BaseURL:      strings.TrimRight(getenvDefault("PAYPAL_BASE_URL", DefaultPayPalBaseURL), "/"),
			MockResponse: strings.TrimSpace(os.Getenv("PAYPAL_MOCK_RESPONSE")),
			Mock:         getenvBool("PAYPAL_MOCK"),
			HTTPTimeout:  getenvDuration("PAYPAL_HTTP_TIMEOUT", 0),
		},
		TokenCache: TokenCache{
			Backend:       TokenCacheBackend(strings.ToLower(getenvDefault("TOKEN_CACHE", string(TokenCacheMemory)))),
			RedisAddr:     os.Getenv("TOKEN_CACHE_REDIS_ADDR"),
			RedisPassword: os.Getenv("TOKEN_CACHE_REDIS_PASSWORD"),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvList(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return append([]string(nil), def...)
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}
