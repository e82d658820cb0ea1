package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable through STORE_DRIVER.
const (
	StoreDynamo = "dynamo"
	StoreMongo  = "mongo"
)

// Notification channels selectable through NOTIFY_CHANNEL.
const (
	NotifySMTP = "smtp"
	NotifySNS  = "sns"
)

// Config holds all runtime configuration loaded from environment variables.
// It is built once in main and passed to constructors; nothing reads the
// environment after Load returns.
type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	StoreDriver    string
	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	MongoURI       string
	MongoDatabase  string

	S3BucketName    string
	S3PublicBaseURL string
	MaxUploadBytes  int64

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration
	ResetCodeTTL      time.Duration

	NotifyChannel string
	SMTPHost      string
	SMTPPort      string
	SMTPFrom      string
	SMTPUsername  string
	SMTPPassword  string
	SNSRegion     string
	SNSTopicARN   string

	RedisURL       string
	AllowedOrigins []string // CORS allowed origins

	// TrustProxy makes the client IP come from X-Forwarded-For/X-Real-IP.
	// Enable only when a proxy that overwrites those headers fronts the service.
	TrustProxy   bool
	SeedListings bool
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users      string
	Listings   string
	ResetCodes string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:  getEnv("APP_PORT", "5000"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", StoreDynamo)),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:      getEnv("DYNAMO_TABLE_USERS", "users"),
			Listings:   getEnv("DYNAMO_TABLE_LISTINGS", "listings"),
			ResetCodes: getEnv("DYNAMO_TABLE_RESET_CODES", "reset_codes"),
		},
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "vrentals"),

		S3BucketName:    getEnv("S3_BUCKET_NAME", "vrentals-listings"),
		S3PublicBaseURL: strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         getEnvDuration("JWT_EXPIRY", time.Hour),
		ResetCodeTTL:      getEnvDuration("RESET_CODE_TTL", 10*time.Minute),

		NotifyChannel: strings.ToLower(getEnv("NOTIFY_CHANNEL", NotifySMTP)),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "1025"),
		SMTPFrom:      getEnv("SMTP_FROM", "noreply@vrentals.app"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SNSRegion:     getEnv("SNS_REGION", "us-east-1"),
		SNSTopicARN:   getEnv("SNS_TOPIC_ARN", ""),

		RedisURL:       getEnv("REDIS_URL", ""),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		TrustProxy:     getEnvBool("TRUST_PROXY", false),
		SeedListings:   getEnvBool("SEED_LISTINGS", true),
	}
}

// Validate reports configuration combinations the service cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDynamo:
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_DRIVER=%s", StoreMongo)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.NotifyChannel {
	case NotifySMTP:
	case NotifySNS:
		if c.SNSTopicARN == "" {
			return fmt.Errorf("SNS_TOPIC_ARN is required when NOTIFY_CHANNEL=%s", NotifySNS)
		}
	default:
		return fmt.Errorf("unknown NOTIFY_CHANNEL %q", c.NotifyChannel)
	}
	if c.JWTExpiry <= 0 || c.ResetCodeTTL <= 0 {
		return fmt.Errorf("JWT_EXPIRY and RESET_CODE_TTL must be positive")
	}
	return nil
}

// IsDevelopment reports whether the service runs with APP_ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("90m") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
