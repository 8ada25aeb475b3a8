package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is resolved once at process startup and injected into components.
// Service clients are constructed from it explicitly; nothing reads the
// environment lazily at first use.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Payment  PaymentConfig
	Email    EmailConfig
	Intake   IntakeConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
}

type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds the PostgreSQL connection. An empty URL disables the
// store; intake then runs in the availability-tolerant degraded mode.
type DatabaseConfig struct {
	URL string
}

// RedisConfig holds the rate-limiter backend. An empty URL disables rate
// limiting.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds the submission event trail brokers. Empty disables the
// Kafka publisher and events go to the in-memory sink.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type PaymentConfig struct {
	StripeSecretKey string
	// CallbackBaseURL is the public site base the hosted payment page
	// redirects back to after checkout.
	CallbackBaseURL string
}

type EmailConfig struct {
	BrevoAPIKey   string
	SenderName    string
	SenderEmail   string
	OperatorEmail string
	SMSSender     string
}

type IntakeConfig struct {
	// RateLimitPerMinute caps submissions per client IP per endpoint class.
	RateLimitPerMinute int
}

// Load builds the configuration from environment variables with an optional
// .env file for development.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	// .env is a development convenience; absence is fine.
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENVIRONMENT"),
		},
		Server: ServerConfig{
			Addr:         v.GetString("SERVER_ADDR"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("REDIS_URL"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout:  v.GetDuration("REDIS_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("REDIS_WRITE_TIMEOUT"),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Payment: PaymentConfig{
			StripeSecretKey: v.GetString("STRIPE_SECRET_KEY"),
			CallbackBaseURL: v.GetString("FRONTEND_URL"),
		},
		Email: EmailConfig{
			BrevoAPIKey:   v.GetString("BREVO_API_KEY"),
			SenderName:    v.GetString("BREVO_SENDER_NAME"),
			SenderEmail:   v.GetString("BREVO_SENDER_EMAIL"),
			OperatorEmail: v.GetString("ADMIN_EMAIL"),
			SMSSender:     v.GetString("BREVO_SMS_SENDER"),
		},
		Intake: IntakeConfig{
			RateLimitPerMinute: v.GetInt("INTAKE_RATE_LIMIT_PER_MINUTE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "leadgate")
	v.SetDefault("APP_ENVIRONMENT", "development")

	v.SetDefault("SERVER_ADDR", ":8081")
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "120s")

	v.SetDefault("REDIS_POOL_SIZE", 20)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")
	v.SetDefault("REDIS_READ_TIMEOUT", "3s")
	v.SetDefault("REDIS_WRITE_TIMEOUT", "3s")

	v.SetDefault("KAFKA_TOPIC", "intake.submissions")

	v.SetDefault("FRONTEND_URL", "http://localhost:8080")

	v.SetDefault("BREVO_SENDER_NAME", "Spa & Salon Africa")
	v.SetDefault("BREVO_SENDER_EMAIL", "noreply@spaandsalonafrica.com")
	v.SetDefault("ADMIN_EMAIL", "admin@spaandsalonafrica.com")
	v.SetDefault("BREVO_SMS_SENDER", "SpaSalon")

	v.SetDefault("INTAKE_RATE_LIMIT_PER_MINUTE", 30)
}

// Validate rejects configurations that would fail confusingly at runtime. The
// store, payment, and email providers stay optional outside production so the
// service can run degraded in development.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Intake.RateLimitPerMinute < 0 {
		return fmt.Errorf("invalid rate limit: %d", c.Intake.RateLimitPerMinute)
	}
	if c.IsProduction() {
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required in production")
		}
		if c.Payment.StripeSecretKey == "" {
			return fmt.Errorf("STRIPE_SECRET_KEY is required in production")
		}
		if c.Email.BrevoAPIKey == "" {
			return fmt.Errorf("BREVO_API_KEY is required in production")
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
