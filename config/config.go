package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Config struct {
	HTTPAddr    string
	DatabaseURL string
	DBMinPool   int
	DBMaxPool   int

	JWTIssuer          string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration

	VerificationCodeTTL time.Duration
	ResetCodeTTL        time.Duration

	CookieDomain  string
	SecureCookies bool

	ResendAPIKey string
	MailFrom     string

	Minio MinioConfig
}

// Load reads configuration from the environment. A .env file is applied
// first when present so local runs behave like deployed ones.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMinPool:   getInt("DB_MIN_POOL_SIZE", 5),
		DBMaxPool:   getInt("DB_MAX_POOL_SIZE", 10),

		JWTIssuer:          getEnv("JWT_ISSUER", "vidstream"),
		AccessTokenSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		RefreshTokenSecret: os.Getenv("JWT_REFRESH_SECRET"),
		AccessTokenTTL:     getDuration("JWT_ACCESS_TTL", 15*time.Minute),
		RefreshTokenTTL:    getDuration("JWT_REFRESH_TTL", 30*24*time.Hour),

		VerificationCodeTTL: getDuration("EMAIL_VERIFICATION_TTL", 15*time.Minute),
		ResetCodeTTL:        getDuration("PASSWORD_RESET_TTL", 15*time.Minute),

		CookieDomain:  os.Getenv("COOKIE_DOMAIN"),
		SecureCookies: getBool("COOKIE_SECURE", true),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     os.Getenv("MAIL_FROM"),

		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getEnv("MINIO_BUCKET", "vidstream-media"),
			UseSSL:    getBool("MINIO_USE_SSL", false),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return nil, errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required")
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, errors.New("access and refresh token secrets must differ")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
