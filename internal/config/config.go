package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"time"    // time parses the timeout durations
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Only the environment and port are
// required; everything else has a demo-friendly default so the service
// boots with no external credentials at all (local catalog, file-backed
// store, notifications disabled).
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	TMDBBaseURL    string        // movie catalog API root
	TMDBAPIKey     string        // catalog API key; empty selects the local fallback catalog
	CatalogTimeout time.Duration // timeout for catalog requests

	AdminWebhookURL string        // sink for admin booking alerts; empty disables
	EmailWebhookURL string        // sink for customer confirmation emails; empty disables
	AdminContact    string        // admin contact address placed in alert payloads
	WebhookTimeout  time.Duration // timeout for each webhook call

	StoreBackend  string // "file" or "redis"
	StoreFilePath string // collection file for the file backend
	StoreRedisKey string // collection key for the redis backend

	QueueEnabled bool // publish booking events to RabbitMQ and run the log consumer
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing
// values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:  must("APP_ENV"),  // environment (dev/test/prod)
		Port: must("APP_PORT"), // port to bind the HTTP server

		TMDBBaseURL:    getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBAPIKey:     os.Getenv("TMDB_API_KEY"), // empty allowed: local catalog mode
		CatalogTimeout: parseDur(getenv("CATALOG_TIMEOUT", "10s")),

		AdminWebhookURL: os.Getenv("ADMIN_ALERT_WEBHOOK_URL"),
		EmailWebhookURL: os.Getenv("EMAIL_WEBHOOK_URL"),
		AdminContact:    getenv("ADMIN_CONTACT", "+919876543210"),
		WebhookTimeout:  parseDur(getenv("WEBHOOK_TIMEOUT", "5s")),

		StoreBackend:  getenv("STORE_BACKEND", "file"),
		StoreFilePath: getenv("STORE_FILE_PATH", "data/bookings.json"),
		StoreRedisKey: getenv("STORE_REDIS_KEY", "sheshnag:bookings"),

		QueueEnabled: getenv("QUEUE_ENABLED", "false") == "true",
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
