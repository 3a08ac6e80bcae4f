// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"os"
)

type Config struct {
	Addr string

	// WebTokenSecret signs session tokens; PasswordHashSecret keys the
	// password digest. Both are required at startup.
	WebTokenSecret     string
	PasswordHashSecret string

	// StorageBackend selects the blob store: "s3", "postgres" or "memory".
	StorageBackend string

	UsersBucket  string
	OrdersBucket string

	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	DatabaseDSN string

	MetricsEnabled bool
	MetricsToken   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:           getenv("ADDR", ":3000"),
		WebTokenSecret: os.Getenv("WEB_TOKEN_SECRET"),

		PasswordHashSecret: os.Getenv("PASSWORD_HASH_SECRET"),

		StorageBackend: getenv("STORAGE_BACKEND", "s3"),
		UsersBucket:    getenv("USERS_BUCKET", "users"),
		OrdersBucket:   getenv("ORDERS_BUCKET", "orders"),

		S3Region:    getenv("S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "true",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	}

	if cfg.WebTokenSecret == "" {
		return nil, errors.New("WEB_TOKEN_SECRET is required")
	}
	if cfg.PasswordHashSecret == "" {
		return nil, errors.New("PASSWORD_HASH_SECRET is required")
	}
	if cfg.StorageBackend == "postgres" && cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN is required for the postgres backend")
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
