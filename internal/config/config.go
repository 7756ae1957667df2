package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time expresses the connection-pool lifetime
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The struct is built once at process start
// and handed to the components that need it; nothing reads these values
// from ambient global state afterwards.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	JWTSecret     string // secret used to sign JWTs

	DBMaxOpenConns    int           // connection pool: max open connections
	DBMaxIdleConns    int           // connection pool: max idle connections
	DBConnMaxLifetime time.Duration // connection pool: max connection lifetime


	TokenTTLHours int    // access token time-to-live in hours
	BcryptCost    int    // bcrypt cost for password hashing

	SMTPHost string // SMTP server host for outgoing mail
	SMTPPort string // SMTP server port
	SMTPFrom string // sender address (also the SMTP login)
	SMTPPass string // SMTP password (empty disables sending)

	AIBaseURL string // base URL of the OpenAI-compatible completions API
	AIAPIKey  string // API key for the summary provider (empty disables)
	AIModel   string // model name passed to the completions API
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Mail and AI
// settings are optional: when absent, the corresponding features degrade
// to logging instead of failing startup.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		JWTSecret:     must("JWT_SECRET"),

		DBMaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: envDur("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		TokenTTLHours: envInt("TOKEN_TTL_HOURS", 24),
		BcryptCost:    mustInt("BCRYPT_COST"),

		SMTPHost: envStr("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: envStr("SMTP_PORT", "587"),
		SMTPFrom: os.Getenv("SMTP_FROM"),
		SMTPPass: os.Getenv("SMTP_PASSWORD"),

		AIBaseURL: envStr("AI_BASE_URL", "https://api.groq.com/openai/v1"),
		AIAPIKey:  os.Getenv("AI_API_KEY"),
		AIModel:   envStr("AI_MODEL", "llama-3.1-8b-instant"),
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

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
