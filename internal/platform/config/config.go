package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	DB       DBConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Email    EmailConfig
	Auth     AuthConfig
	Upload   UploadConfig
	Log      LogConfig
	Seed     SeedConfig

	FrontendURL string `validate:"omitempty,url"`
}

type HTTPConfig struct {
	Addr         string        `validate:"required"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
	IdleTimeout  time.Duration `validate:"gt=0"`
	GinMode      string        `validate:"oneof=debug release test"`
}

type DBConfig struct {
	Host            string `validate:"required"`
	Port            string `validate:"required"`
	User            string `validate:"required"`
	Password        string
	Name            string `validate:"required"`
	SSLMode         string `validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `validate:"gte=1"`
	MaxIdleConns    int    `validate:"gte=0"`
	ConnMaxLifetime time.Duration
	ConnectRetries  int `validate:"gte=1"`
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// RedisConfig with an empty Addr disables the event cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int           `validate:"gte=0"`
	EventTTL time.Duration `validate:"gt=0"`
}

// RabbitMQConfig with an empty URL sends email directly.
type RabbitMQConfig struct {
	URL      string
	Exchange string `validate:"required_with=URL"`
	Queue    string `validate:"required_with=URL"`
}

type EmailConfig struct {
	APIURL  string `validate:"omitempty,url"`
	APIKey  string
	Timeout time.Duration `validate:"gt=0"`
}

type AuthConfig struct {
	JWTSecret     string        `validate:"required,min=16"`
	AccessTTL     time.Duration `validate:"gt=0"`
	ResetTokenTTL time.Duration `validate:"gt=0"`
	BcryptCost    int           `validate:"gte=4,lte=31"`
}

type UploadConfig struct {
	Dir       string `validate:"required"`
	URLPrefix string `validate:"required,startswith=/"`
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Pretty bool
}

type SeedConfig struct {
	AdminName     string
	AdminEmail    string `validate:"omitempty,email"`
	AdminPassword string
}

// Load reads .env when present and then the environment, which always wins.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:         getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
			GinMode:      getEnv("GIN_MODE", "release"),
		},
		DB: DBConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "campus_event"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnectRetries:  getInt("DB_CONNECT_RETRIES", 10),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
			EventTTL: getDuration("EVENT_CACHE_TTL", 5*time.Minute),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "notifications"),
			Queue:    getEnv("RABBITMQ_QUEUE", "notifications.email"),
		},
		Email: EmailConfig{
			APIURL:  getEnv("SMTP_API_URL", ""),
			APIKey:  getEnv("SMTP_API_KEY", ""),
			Timeout: getDuration("EMAIL_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			AccessTTL:     getDuration("JWT_TTL", 24*time.Hour),
			ResetTokenTTL: getDuration("RESET_TOKEN_TTL", time.Hour),
			BcryptCost:    getInt("BCRYPT_COST", 10),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "./uploads"),
			URLPrefix: getEnv("UPLOAD_URL_PREFIX", "/uploads"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getBool("LOG_PRETTY", false),
		},
		Seed: SeedConfig{
			AdminName:     getEnv("SEED_ADMIN_NAME", "Administrator"),
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
