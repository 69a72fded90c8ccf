package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DATABASE_URL wins when set; otherwise the DSN is assembled from parts.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:""`
	DBName      string `envconfig:"DB_NAME" default:"flowerstudio"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"change-me-in-production"`

	// Initial merchant credential, written to the studio record on first boot.
	MerchantPassword string `envconfig:"MERCHANT_PASSWORD" default:"flower123"`

	// Firebase is optional; when the credentials file is empty the service
	// runs with log-only notifications and no cloud sync.
	FirebaseCredentialsFile string `envconfig:"FIREBASE_CREDENTIALS_FILE" default:""`
	FirebaseProjectID       string `envconfig:"FIREBASE_PROJECT_ID" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// FirebaseEnabled reports whether cloud sync and push dispatch are configured.
func (c *Config) FirebaseEnabled() bool {
	return c.FirebaseCredentialsFile != ""
}
