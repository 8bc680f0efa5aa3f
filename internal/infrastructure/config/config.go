package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	AppName   string `env:"APP_NAME,  default=InventoryPro"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	OTP   OTPConfig
	Email EmailConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type OTPConfig struct {
	// Enabled gates the email-verification step of login. Disable for
	// development to go straight from credentials to token.
	Enabled        bool          `env:"OTP_ENABLED,         default=true"`
	TTL            time.Duration `env:"OTP_TTL,             default=5m"`
	ResendCooldown time.Duration `env:"OTP_RESEND_COOLDOWN, default=30s"`
}

type EmailConfig struct {
	BaseURL         string `env:"EMAILJS_BASE_URL"`
	ServiceID       string `env:"EMAILJS_SERVICE_ID"`
	CodeTemplateID  string `env:"EMAILJS_CODE_TEMPLATE_ID"`
	AlertTemplateID string `env:"EMAILJS_ALERT_TEMPLATE_ID"`
	PublicKey       string `env:"EMAILJS_PUBLIC_KEY"`
	AlertsEmail     string `env:"ALERTS_EMAIL"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=inventory_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
