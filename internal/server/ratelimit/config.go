package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Tier is the rate-limit configuration for a group of endpoints. A Path
// ending in "/" matches by prefix; a Limit of zero means unlimited.
type Tier struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Trusted         map[string]bool // client IDs exempt from limiting
	Tiers           []Tier
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Trusted:         parseIPList(os.Getenv("RATE_LIMIT_TRUSTED")),
		Tiers:           defaultTiers(),
	}
}

// defaultTiers returns the endpoint tiers for this API. Report generation
// renders a multi-page PDF and opens an SMTP session per request, so it is
// limited far more aggressively than static assets.
func defaultTiers() []Tier {
	return []Tier{
		{Path: "/send-pdf", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
	}
}

// match resolves a request to its tier: health checks are unlimited,
// configured tiers match exactly or by prefix, and everything else (the
// static quiz assets, mostly) uses the default limit.
func (c *Config) match(path, method string) Tier {
	if path == "/health" && method == "GET" {
		return Tier{}
	}

	for _, tier := range c.Tiers {
		if tier.Method != method {
			continue
		}
		if tier.Path == path {
			return tier
		}
		if strings.HasSuffix(tier.Path, "/") && strings.HasPrefix(path, tier.Path) {
			return tier
		}
	}

	return Tier{
		Path:   "/",
		Method: method,
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
	}
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
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

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
