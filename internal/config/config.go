package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the full application configuration, read from the environment.
type Config struct {
	Port string // server port (8080)

	DatabaseURL      string // full DSN, wins over the discrete vars below
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret string // HS256 secret used to verify access tokens

	MercadoPagoBaseURL     string // gateway API base, overridable for tests
	MercadoPagoAccessToken string

	// Owner-notification webhook. Empty disables notifications.
	NotifyWebhookURL string

	// Path to the bilingual marketing content blob, loaded once at startup.
	ContentPath string

	GoEnv string // dev/prod
}

const defaultMercadoPagoBaseURL = "https://api.mercadopago.com"

// Load reads the environment and fails fast on anything missing.
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		MercadoPagoBaseURL:     getenv("MP_BASE_URL", defaultMercadoPagoBaseURL),
		MercadoPagoAccessToken: os.Getenv("MP_ACCESS_TOKEN"),

		NotifyWebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),

		ContentPath: getenv("CONTENT_PATH", "content.json"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	if cfg.DatabaseURL == "" {
		pgPort, err := mustAtoi("POSTGRES_PORT")
		if err != nil {
			return Config{}, err
		}
		cfg.PostgresPort = pgPort

		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MercadoPagoAccessToken == "" {
		return Config{}, fmt.Errorf("MP_ACCESS_TOKEN is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
