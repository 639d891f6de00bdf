package config

import (
	"strings"
	"time"

	"github.com/Sovanra/DesignDeck/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	DB          DatabaseConfig
	RateLimiter RateLimiterConfig
	Auth        AuthConfig
	Upload      UploadConfig
	Minio       MinioConfig
	AI          AIConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type UploadConfig struct {
	// Driver selects where file bytes live: "local" or "minio".
	Driver string
	// Directory holds uploaded bytes when the local driver is active.
	Directory string
	// MaxBytes is the global request body ceiling.
	MaxBytes int64
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

type AIConfig struct {
	// BaseURL should include the /v1 prefix of an OpenAI-compatible API.
	BaseURL string
	API_KEY string
	Model   string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "designdeck"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Auth: AuthConfig{
			JWT_SECRET: env.GetString("AUTH_JWT_SECRET", ""),
		},
		Upload: UploadConfig{
			Driver:    env.GetString("UPLOAD_DRIVER", "local"),
			Directory: env.GetString("UPLOAD_DIRECTORY", "static/uploads"),
			// 50 MiB
			MaxBytes: env.GetInt64("UPLOAD_MAX_BYTES", 50*1024*1024),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", "designdeck-uploads"),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
		AI: AIConfig{
			BaseURL: env.GetString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			API_KEY: env.GetString("OPENAI_API_KEY", ""),
			Model:   env.GetString("OPENAI_MODEL", "gpt-4"),
		},
	}
}
