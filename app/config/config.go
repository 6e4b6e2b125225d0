// Package config builds the application configuration once at startup.
// Components receive the resulting struct explicitly instead of reading
// the environment at arbitrary points.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default session lifetime. A token must be re-established after this
// much time regardless of activity.
const DefaultSessionTTL = 30 * time.Minute

// Config carries everything the server needs, resolved from the
// environment exactly once.
type Config struct {
	// Addr is the listen address, e.g. ":5501".
	Addr string

	// DBDriver selects the SQL driver: "postgres" or "sqlite".
	DBDriver string
	// DBHost, DBPort, DBUser, DBPassword and DBName describe the postgres
	// connection. Ignored for sqlite.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	// DBPath is the sqlite database file. Ignored for postgres.
	DBPath string

	// BaseURL is the public site root used for sitemap links.
	BaseURL string

	// AdminUsername names the bootstrap admin account.
	AdminUsername string
	// AdminPasswordHash is a precomputed hash (bcrypt or SHA-256 hex) for
	// the bootstrap account. Takes precedence over AdminPassword.
	AdminPasswordHash string
	// AdminPassword is a plaintext credential hashed at startup when no
	// precomputed hash is supplied.
	AdminPassword string

	// SessionTTL bounds how long a login stays valid.
	SessionTTL time.Duration

	// CORSAllowedOrigins lists origins allowed to call the API. Empty
	// means any origin.
	CORSAllowedOrigins []string
	// CORSAllowCredentials echoes the requesting origin and enables
	// credentialed requests. Incompatible with a wildcard origin list.
	CORSAllowCredentials bool

	// LogLevel and LogFormat configure the structured logger.
	LogLevel  string
	LogFormat string
}

// Load reads .env (if present) and the process environment and returns
// a validated Config.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Addr:                 getenv("ADDR", ":5501"),
		DBDriver:             getenv("DB_DRIVER", "postgres"),
		DBHost:               getenv("DB_HOST", "localhost"),
		DBPort:               getenv("DB_PORT", "5432"),
		DBUser:               getenv("DB_USER", "blog_user"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               getenv("DB_NAME", "blog_db"),
		DBPath:               getenv("DB_PATH", "blog.db"),
		BaseURL:              getenv("BASE_URL", "https://orange-man.xyz"),
		AdminUsername:        getenv("ADMIN_USER", "admin"),
		AdminPasswordHash:    os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminPassword:        os.Getenv("ADMIN_PASSWORD"),
		SessionTTL:           DefaultSessionTTL,
		CORSAllowCredentials: os.Getenv("CORS_ALLOW_CREDENTIALS") == "true",
		LogLevel:             getenv("LOG_LEVEL", "info"),
		LogFormat:            getenv("LOG_FORMAT", "text"),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("parsing SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	// Browsers reject credentialed responses carrying a wildcard origin,
	// so the two CORS modes are mutually exclusive.
	if c.CORSAllowCredentials {
		for _, origin := range c.CORSAllowedOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be combined with a wildcard origin")
			}
		}
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	return nil
}

// DSN returns the driver-specific data source name.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBPath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
