package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBacktestSeed seeds the landing page simulation when BACKTEST_SEED is unset
	DefaultBacktestSeed uint32 = 20251215
	// DefaultTickInterval is the backtest tick period at 1x speed
	DefaultTickInterval = 220 * time.Millisecond
	// DefaultEmailTimeout bounds a single call to the email provider
	DefaultEmailTimeout = 10 * time.Second
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Email (Resend)
	ResendAPIKey     string
	EmailFrom        string
	EmailFromName    string
	ContactRecipient string
	EmailTestMode    bool // When true, emails are logged to console instead of sent
	EmailTimeout     time.Duration
	// Backtest simulation
	BacktestSeed         uint32
	BacktestTickInterval time.Duration
	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	defaultFormat := "json"
	if environment == "development" {
		defaultFormat = "text"
	}

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		Environment:          environment,
		AppURL:               strings.TrimSuffix(getEnv("APP_URL", "http://localhost:8080"), "/"),
		ResendAPIKey:         os.Getenv("RESEND_API_KEY"),
		EmailFrom:            getEnv("EMAIL_FROM", "onboarding@resend.dev"),
		EmailFromName:        getEnv("EMAIL_FROM_NAME", "ICT Website"),
		ContactRecipient:     getEnv("CONTACT_RECIPIENT", "admin@icttradinghub.com"),
		EmailTestMode:        getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		EmailTimeout:         getEnvDuration("EMAIL_TIMEOUT", DefaultEmailTimeout),
		BacktestSeed:         getEnvUint32("BACKTEST_SEED", DefaultBacktestSeed),
		BacktestTickInterval: getEnvDuration("BACKTEST_TICK_INTERVAL", DefaultTickInterval),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", defaultFormat),
		LogFile:              os.Getenv("LOG_FILE"),
		AllowedOrigins:       splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

// IsProduction reports whether the app runs with ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SenderAddress returns the From header used for outbound email
func (c *Config) SenderAddress() string {
	if c.EmailFromName == "" {
		return c.EmailFrom
	}
	return c.EmailFromName + " <" + c.EmailFrom + ">"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvUint32(key string, defaultValue uint32) uint32 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		log.Printf("[WARNING] Invalid value for %s (%q), using %d", key, value, defaultValue)
		return defaultValue
	}
	return uint32(n)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
