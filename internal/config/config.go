// Package config provides environment-based configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults mirror the historical deployment. The SMTP credential defaults
// are placeholders and are reported by InsecureDefaults so the server can
// warn loudly instead of failing silently at send time.
const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587
	DefaultSMTPUser = "your-email@gmail.com"
	DefaultSMTPPass = "your-app-specific-password"
)

// Config holds all runtime configuration for the server.
type Config struct {
	Port        int
	PublicDir   string
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SendTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() *Config {
	return &Config{
		Port:        getEnvInt("PORT", 3000),
		PublicDir:   getEnvString("PUBLIC_DIR", "public"),
		SMTPHost:    getEnvString("SMTP_HOST", DefaultSMTPHost),
		SMTPPort:    getEnvInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUser:    getEnvString("SMTP_USER", DefaultSMTPUser),
		SMTPPass:    getEnvString("SMTP_PASS", DefaultSMTPPass),
		SendTimeout: getEnvDuration("SMTP_SEND_TIMEOUT", 30*time.Second),
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	if c.SMTPHost == "" {
		return fmt.Errorf("config error: SMTP host must not be empty")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("config error: invalid SMTP port %d", c.SMTPPort)
	}
	if c.SendTimeout <= 0 {
		return fmt.Errorf("config error: send timeout must be positive")
	}
	return nil
}

// InsecureDefaults returns the names of credential settings still at their
// placeholder values.
func (c *Config) InsecureDefaults() []string {
	var insecure []string
	if c.SMTPUser == DefaultSMTPUser {
		insecure = append(insecure, "SMTP_USER")
	}
	if c.SMTPPass == DefaultSMTPPass {
		insecure = append(insecure, "SMTP_PASS")
	}
	return insecure
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
