package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Plaid       PlaidConfig
	GoogleOAuth GoogleOAuthConfig
	Policy      PolicyConfig
}

type AppConfig struct {
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type PlaidConfig struct {
	ClientID    string
	Secret      string
	Environment string
	SentryDSN   string
}

type GoogleOAuthConfig struct {
	Enabled      bool
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// PolicyConfig holds the savings-progress constants. All three must be
// positive: the calculator divides by WeeklyTarget.
type PolicyConfig struct {
	DailyLimit        float64
	WeeklyTarget      float64
	DownPaymentTarget float64
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "homerun"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
		},
		Plaid: PlaidConfig{
			ClientID:    os.Getenv("PLAID_CLIENT_ID"),
			Secret:      os.Getenv("PLAID_SECRET"),
			Environment: getEnv("PLAID_ENV", "sandbox"),
			SentryDSN:   os.Getenv("PLAID_SENTRY_DSN"),
		},
		GoogleOAuth: GoogleOAuthConfig{
			Enabled:      getEnv("GOOGLE_OAUTH_ENABLED", "") == "true",
			ClientID:     os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_OAUTH_REDIRECT_URL"),
		},
		Policy: PolicyConfig{
			DailyLimit:        getEnvFloat("POLICY_DAILY_LIMIT", 50),
			WeeklyTarget:      getEnvFloat("POLICY_WEEKLY_TARGET", 250),
			DownPaymentTarget: getEnvFloat("POLICY_DOWN_PAYMENT_TARGET", 20000),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Policy.DailyLimit <= 0 {
		return fmt.Errorf("config: POLICY_DAILY_LIMIT must be positive, got %v", c.Policy.DailyLimit)
	}
	if c.Policy.WeeklyTarget <= 0 {
		return fmt.Errorf("config: POLICY_WEEKLY_TARGET must be positive, got %v", c.Policy.WeeklyTarget)
	}
	if c.Policy.DownPaymentTarget <= 0 {
		return fmt.Errorf("config: POLICY_DOWN_PAYMENT_TARGET must be positive, got %v", c.Policy.DownPaymentTarget)
	}
	switch c.Plaid.Environment {
	case "sandbox", "development", "production":
	default:
		return fmt.Errorf("config: unknown PLAID_ENV %q", c.Plaid.Environment)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
