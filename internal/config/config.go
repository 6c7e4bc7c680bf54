package config

import "os"

// Config holds everything the app reads from the environment.
type Config struct {
	Port string

	// DatabaseURL takes precedence over the individual Postgres fields.
	DatabaseURL      string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// PublicBaseURL is what receipt URLs are built from (reverse proxies,
	// hosted deploys). Empty means http://localhost:<Port>.
	PublicBaseURL string
	ReceiptsDir   string
	FrontendDir   string
	LogoPath      string

	JWTSecret string
}

// Load reads the environment. Defaults suit local development; production
// deploys are expected to set everything explicitly.
func Load() Config {
	cfg := Config{
		Port: getenv("PORT", "3000"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "norkysdb"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		ReceiptsDir:   getenv("RECEIPTS_DIR", "boletas"),
		FrontendDir:   getenv("FRONTEND_DIR", "frontend"),
		LogoPath:      getenv("LOGO_PATH", "images/pollo_v1.png"),

		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}

	return cfg
}

func getenv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
