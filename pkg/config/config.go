package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Groq   GroqConfig
	SMTP   SMTPConfig
	Output OutputConfig
	Log    LogConfig
}

// GroqConfig holds Groq API configuration
type GroqConfig struct {
	APIKey     string        `envconfig:"GROQ_API_KEY"`
	BaseURL    string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model      string        `envconfig:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
	Timeout    time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`
	MaxRetries uint64        `envconfig:"GROQ_MAX_RETRIES" default:"3"`
}

// SMTPConfig holds mail-submission configuration
type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"SMTP_PORT" default:"465"`
	Email    string `envconfig:"SMTP_EMAIL"`
	Password string `envconfig:"SMTP_PASSWORD"`
}

// OutputConfig holds artifact output configuration
type OutputConfig struct {
	Dir string `envconfig:"OUTPUT_DIR" default:"outputs"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from a .env file (if present) and the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks the fields every run needs. SMTP credentials are only
// required when email sending is enabled, so they are checked separately.
func (c *Config) Validate() error {
	if c.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	return nil
}

// ValidateSMTP checks the fields the send phase needs.
func (c *Config) ValidateSMTP() error {
	if c.SMTP.Email == "" {
		return fmt.Errorf("SMTP_EMAIL is required when email sending is enabled")
	}
	if c.SMTP.Password == "" {
		return fmt.Errorf("SMTP_PASSWORD is required when email sending is enabled")
	}
	return nil
}
