package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	SMTP         SMTPConfig
	Auth         AuthConfig
	Verification VerificationConfig
	Media        MediaConfig
	Ai           AIConfig
	Events       EventsConfig
}

type AppConfig struct {
	Port               string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	MetricsEnabled     bool
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AuthConfig struct {
	JWTSecret  string
	JWTExpiry  time.Duration
	CookieName string
	CookieDays int
	OTPTTL     time.Duration
	BcryptCost int
}

type VerificationConfig struct {
	Driver string // "redis" or "memory"
}

type MediaConfig struct {
	Driver string // "s3" or "local"

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string

	LocalDir       string
	LocalPublicURL string
}

type AIConfig struct {
	Provider string // "gemini", "ollama" or "huggingface"
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

type EventsConfig struct {
	MailTopic string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", true),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "TeamSync"),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", ""),
			JWTExpiry:  getEnvAsDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
			CookieName: "token",
			CookieDays: getEnvAsInt("COOKIE_EXPIRES_IN", 7),
			OTPTTL:     5 * time.Minute,
			BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
		},
		Verification: VerificationConfig{
			Driver: getEnv("VERIFICATION_STORE", "redis"),
		},
		Media: MediaConfig{
			Driver:          getEnv("MEDIA_DRIVER", "local"),
			S3Endpoint:      getEnv("S3_ENDPOINT", ""),
			S3Region:        getEnv("S3_REGION", "us-east-1"),
			S3Bucket:        getEnv("S3_BUCKET", "teamsync"),
			S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:     getEnv("S3_SECRET_KEY", ""),
			S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
			LocalDir:        getEnv("MEDIA_LOCAL_DIR", "uploads"),
			LocalPublicURL:  getEnv("MEDIA_LOCAL_PUBLIC_URL", "http://localhost:5000/uploads"),
		},
		Ai: AIConfig{
			Provider: getEnv("LLM_PROVIDER", "gemini"),
			Model:    getEnv("LLM_MODEL", "gemini-2.5-flash"),
			BaseURL:  getEnv("LLM_BASE_URL", ""),
			APIKey:   getEnv("LLM_API_KEY", getEnv("GEMINI_API_KEY", "")),
			Timeout:  getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		},
		Events: EventsConfig{
			MailTopic: getEnv("MAIL_TOPIC_NAME", "SEND_OTP_MAIL"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("168h") and the "<n>d" day shorthand.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := strings.TrimSpace(getEnv(key, ""))
	if strValue == "" {
		return fallback
	}
	if strings.HasSuffix(strValue, "d") {
		if days, err := strconv.Atoi(strings.TrimSuffix(strValue, "d")); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
