package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Env      string
	LogLevel string

	// Business identity (used in notification emails and error copy)
	BusinessName  string
	BusinessPhone string
	NotifyToEmail string
	PrimaryCity   string

	// AWS
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// Lead photo storage (S3)
	LeadPhotosBucket string

	// Lead persistence
	LeadsTable  string // DynamoDB table; empty disables the Dynamo store
	DatabaseURL string // Postgres; empty disables the Postgres store

	// Notification email
	SESFromEmail      string
	SESFromName       string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Cooldown store
	RedisAddr      string
	RedisPassword  string
	RedisTLS       bool
	CooldownWindow time.Duration

	// Photo attachment caps
	MaxPhotos     int
	MaxPhotoBytes int64
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BusinessName:  getEnv("BUSINESS_NAME", "Stoneworks Interlock"),
		BusinessPhone: getEnv("BUSINESS_PHONE", "+1 (613) 850-8158"),
		NotifyToEmail: getEnv("NOTIFY_TO_EMAIL", ""),
		PrimaryCity:   getEnv("PRIMARY_CITY", "Ottawa"),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		LeadPhotosBucket: getEnv("LEAD_PHOTOS_BUCKET", ""),

		LeadsTable:  getEnv("LEADS_TABLE", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "Stoneworks Interlock"),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Stoneworks Interlock"),

		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisTLS:       getEnvAsBool("REDIS_TLS", false),
		CooldownWindow: getEnvAsDuration("QUOTE_COOLDOWN_WINDOW", 30*time.Second),

		MaxPhotos:     getEnvAsInt("MAX_LEAD_PHOTOS", 5),
		MaxPhotoBytes: int64(getEnvAsInt("MAX_LEAD_PHOTO_BYTES", 6*1024*1024)),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
