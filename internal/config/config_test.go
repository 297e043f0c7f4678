package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PUBLIC_DIR", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_SEND_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "public", cfg.PublicDir)
	assert.Equal(t, DefaultSMTPHost, cfg.SMTPHost)
	assert.Equal(t, DefaultSMTPPort, cfg.SMTPPort)
	assert.Equal(t, DefaultSMTPUser, cfg.SMTPUser)
	assert.Equal(t, DefaultSMTPPass, cfg.SMTPPass)
	assert.Equal(t, 30*time.Second, cfg.SendTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PUBLIC_DIR", "static")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "reports@example.com")
	t.Setenv("SMTP_PASS", "hunter2")
	t.Setenv("SMTP_SEND_TIMEOUT", "45s")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "static", cfg.PublicDir)
	assert.Equal(t, "mail.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "reports@example.com", cfg.SMTPUser)
	assert.Equal(t, "hunter2", cfg.SMTPPass)
	assert.Equal(t, 45*time.Second, cfg.SendTimeout)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("SMTP_SEND_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.SendTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:        3000,
			PublicDir:   "public",
			SMTPHost:    "mail.example.com",
			SMTPPort:    587,
			SMTPUser:    "reports@example.com",
			SMTPPass:    "hunter2",
			SendTimeout: 30 * time.Second,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty SMTP host", func(c *Config) { c.SMTPHost = "" }},
		{"invalid SMTP port", func(c *Config) { c.SMTPPort = -1 }},
		{"non-positive timeout", func(c *Config) { c.SendTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestInsecureDefaults(t *testing.T) {
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")

	cfg := Load()
	assert.ElementsMatch(t, []string{"SMTP_USER", "SMTP_PASS"}, cfg.InsecureDefaults())

	cfg.SMTPUser = "reports@example.com"
	assert.Equal(t, []string{"SMTP_PASS"}, cfg.InsecureDefaults())

	cfg.SMTPPass = "hunter2"
	assert.Empty(t, cfg.InsecureDefaults())
}
