package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURI           string
	MongoDB            string
	MongoPingInterval  time.Duration // reconnect/ping cadence for the connection manager
	MongoConnectWindow time.Duration // timeout for a single connect/ping attempt

	// Redis (transport-level rate limiting; optional)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Google Cloud Storage (image host)
	GCSBucket              string
	GCSCredentialsJSONPath string // optional; if empty, Application Default Credentials are used
	GCSFolder              string

	// JWT
	JWTSecret string
	JWTExpire time.Duration

	// Admin identity (single configured admin; see auth service)
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string // optional bcrypt hash; takes precedence over AdminPassword

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Upload limits
	UploadMaxBytes     int64
	UploadAllowedTypes string // comma-separated MIME types

	// Mailgun (contact notifications)
	MailgunDomain    string
	MailgunAPIKey    string
	MailgunSender    string
	ContactRecipient string

	// RabbitMQ (contact email queue)
	RabbitMQURL        string
	RabbitMQEmailQueue string

	// Email sending toggle
	MailSendEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getint64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "landing-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURI:           getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:            getenv("MONGODB_DB", "landingpage"),
		MongoPingInterval:  getdur("MONGODB_PING_INTERVAL", 5*time.Second),
		MongoConnectWindow: getdur("MONGODB_CONNECT_TIMEOUT", 10*time.Second),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		GCSBucket:              getenv("GCS_BUCKET", ""),
		GCSCredentialsJSONPath: getenv("GCS_CREDENTIALS_JSON", ""),
		GCSFolder:              getenv("GCS_FOLDER", "landingpage/projects"),

		JWTSecret: getenv("JWT_SECRET", "fallback-secret"),
		JWTExpire: getdur("JWT_EXPIRE", 168*time.Hour),

		AdminEmail:        getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:     getenv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		UploadMaxBytes:     getint64("UPLOAD_MAX_BYTES", 5<<20),
		UploadAllowedTypes: getenv("UPLOAD_ALLOWED_TYPES", "image/jpeg,image/png,image/webp,image/jpg"),

		MailgunDomain:    getenv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:    getenv("MAILGUN_API_KEY", ""),
		MailgunSender:    getenv("MAILGUN_SENDER", ""),
		ContactRecipient: getenv("CONTACT_RECIPIENT", ""),

		RabbitMQURL:        getenv("RABBITMQ_URL", ""),
		RabbitMQEmailQueue: getenv("RABBITMQ_EMAIL_QUEUE", "emails"),

		MailSendEnabled: getbool("MAIL_SEND_ENABLED", true),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// UploadTypes returns the allowed upload MIME types as a slice
func (c *Config) UploadTypes() []string {
	parts := strings.Split(c.UploadAllowedTypes, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
