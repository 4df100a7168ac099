package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Secrets (the admin credential hash, the session
// signing secret) are never hard-coded; they must be provided through the
// environment or a .env file.
type Config struct {
	Env               string // application environment (e.g. "dev", "prod")
	Port              string // HTTP port to listen on
	DBUser            string // database username
	DBPass            string // database password (optional)
	DBHost            string // database host address
	DBPort            string // database port number
	DBName            string // database name
	SessionSecret     string // secret used to sign the admin session cookie
	SessionTTLMin     int    // admin session time-to-live in minutes
	AdminEmail        string // email of the single console administrator
	AdminPasswordHash string // bcrypt hash of the administrator password
	UploadDir         string // directory where admin image uploads are stored
	AMQPURL           string // RabbitMQ URL for order events (optional)
}

// Load reads configuration values from environment variables and returns a
// Config. A .env file in the working directory is merged in first when
// present. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load() // .env is optional; real env vars win

	return Config{
		Env:               must("APP_ENV"),
		Port:              must("APP_PORT"),
		DBUser:            must("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"), // empty allowed
		DBHost:            must("DB_HOST"),
		DBPort:            must("DB_PORT"),
		DBName:            must("DB_NAME"),
		SessionSecret:     must("SESSION_SECRET"),
		SessionTTLMin:     mustInt("SESSION_TTL_MIN"),
		AdminEmail:        must("ADMIN_EMAIL"),
		AdminPasswordHash: must("ADMIN_PASSWORD_HASH"),
		UploadDir:         getenv("UPLOAD_DIR", "static/uploads"),
		AMQPURL:           os.Getenv("RABBITMQ_URL"), // empty disables order events
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
