package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App       App
		CORS      CORS
		Cache     Cache
		HTTP      HTTP
		Log       Log
		Pg        Pg
		Redis     Redis
		Swagger   Swagger
		Schedule  Schedule
		JWT       JWT
		Payment   Payment
		Xendit    Xendit
		Upload    Upload
		Storage   Storage
		Mail      Mail
		RateLimit RateLimit
		Metrics   Metrics
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
		URL      string `env:"APP_URL" envDefault:"http://localhost:3000"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	Cache struct {
		Duration int `env:"CACHE_DURATIONS,required"`
	}

	HTTP struct {
		Port            string        `env:"HTTP_PORT,required"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required" envDefault:"info"`
	}

	Pg struct {
		PoolMax     int    `env:"PG_POOL_MAX,required"`
		Host        string `env:"PG_HOST,required"`
		Port        int    `env:"PG_PORT,required"`
		User        string `env:"PG_USER"`
		Password    string `env:"PG_PASSWORD"`
		Dbname      string `env:"PG_DATABASE,required"`
		SSLMode     string `env:"PG_SSLMODE,required"`
		Timezone    string `env:"PG_TIMEZONE,required"`
		AutoMigrate bool   `env:"PG_AUTO_MIGRATE" envDefault:"true"`

		ConnAttempts int           `env:"PG_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout  time.Duration `env:"PG_CONN_TIMEOUT" envDefault:"5s"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST,required"`
		Port     int    `env:"REDIS_PORT,required"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Schedule struct {
		BookingsExpiration string `env:"SCHEDULE_BOOKINGS_EXPIRATION,required"`
	}

	JWT struct {
		Secret             string `env:"JWT_SECRET,required"`
		AccessTokenExpiry  string `env:"JWT_ACCESS_TOKEN_EXPIRY"  envDefault:"24h"`
		RefreshTokenExpiry string `env:"JWT_REFRESH_TOKEN_EXPIRY" envDefault:"7d"`
	}

	// Payment describes the bank account guests transfer to and how long a deferred booking is held.
	Payment struct {
		HoldDuration  time.Duration `env:"PAYMENT_HOLD_DURATION" envDefault:"15m"`
		Gateway       string        `env:"PAYMENT_GATEWAY" envDefault:"manual"`
		BankName      string        `env:"PAYMENT_BANK_NAME"`
		AccountNumber string        `env:"PAYMENT_ACCOUNT_NUMBER"`
		AccountName   string        `env:"PAYMENT_ACCOUNT_NAME"`
	}

	Xendit struct {
		APIKey        string `env:"XENDIT_API_KEY"`
		CallbackToken string `env:"XENDIT_CALLBACK_TOKEN"`
		SuccessURL    string `env:"XENDIT_SUCCESS_URL"`
		FailureURL    string `env:"XENDIT_FAILURE_URL"`
	}

	Upload struct {
		Driver  string `env:"UPLOAD_DRIVER" envDefault:"disk"`
		Dir     string `env:"UPLOAD_DIR" envDefault:"public/images"`
		MaxSize int64  `env:"UPLOAD_MAX_SIZE" envDefault:"5242880"`
	}

	Storage struct {
		AccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"STORAGE_SECRET_ACCESS_KEY"`
		EndpointURL     string `env:"STORAGE_ENDPOINT_URL"`
		Region          string `env:"STORAGE_REGION" envDefault:"auto"`
		BucketName      string `env:"STORAGE_BUCKET_NAME"`
		PublicURL       string `env:"STORAGE_PUBLIC_URL"`
	}

	Mail struct {
		Enabled      bool   `env:"MAIL_ENABLED" envDefault:"false"`
		SMTPHost     string `env:"MAIL_SMTP_HOST"`
		SMTPPort     int    `env:"MAIL_SMTP_PORT" envDefault:"587"`
		SMTPUsername string `env:"MAIL_SMTP_USERNAME"`
		SMTPPassword string `env:"MAIL_SMTP_PASSWORD"`
		FromEmail    string `env:"MAIL_FROM_EMAIL"`
		FromName     string `env:"MAIL_FROM_NAME"`
	}

	RateLimit struct {
		Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
		RPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
		Burst   int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	}

	Metrics struct {
		Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}
