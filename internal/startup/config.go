package startup

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"research-blender-api/internal/logging"
)

// Config holds all application configuration
type Config struct {
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	LogHealthChecks bool
	ShutdownTimeout time.Duration

	// CORS
	CORSAllowedOrigins []string

	// Transcript provider
	TranscriptLanguages []string
	ProviderTimeout     time.Duration
	ProviderMaxRetries  int
	YouTubeBaseURL      string
}

const (
	defaultPort                = "5000"
	defaultMetricsPort         = "9090"
	defaultCORSAllowedOrigins  = "*"
	defaultTranscriptLanguages = "en,en-US,en-GB"
	defaultProviderTimeout     = 30 * time.Second
	defaultProviderMaxRetries  = 2
	defaultYouTubeBaseURL      = "https://www.youtube.com"
	defaultShutdownTimeout     = 30 * time.Second
)

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	config := &Config{
		Port:                getEnv("PORT", defaultPort),
		MetricsPort:         getEnv("METRICS_PORT", defaultMetricsPort),
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", true),
		LogHealthChecks:     getEnvBool("LOG_HEALTH_CHECKS", true),
		ShutdownTimeout:     getEnvDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		CORSAllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigins),
		TranscriptLanguages: getEnvList("TRANSCRIPT_LANGUAGES", defaultTranscriptLanguages),
		ProviderTimeout:     getEnvDuration("PROVIDER_TIMEOUT", defaultProviderTimeout),
		ProviderMaxRetries:  getEnvInt("PROVIDER_MAX_RETRIES", defaultProviderMaxRetries),
		YouTubeBaseURL:      strings.TrimRight(getEnv("YOUTUBE_BASE_URL", defaultYouTubeBaseURL), "/"),
	}

	logging.Info("  PORT:                  %s", config.Port)
	logging.Info("  METRICS_PORT:          %s", config.MetricsPort)
	logging.Info("  METRICS_ENABLED:       %v", config.MetricsEnabled)
	logging.Info("  LOG_HEALTH_CHECKS:     %v", config.LogHealthChecks)
	logging.Info("  LOG_LEVEL:             %s", logging.GetLevel())
	logging.Info("  SHUTDOWN_TIMEOUT:      %v", config.ShutdownTimeout)
	logging.Info("  CORS_ALLOWED_ORIGINS:  %s", strings.Join(config.CORSAllowedOrigins, ","))
	logging.Info("  TRANSCRIPT_LANGUAGES:  %s", strings.Join(config.TranscriptLanguages, ","))
	logging.Info("  PROVIDER_TIMEOUT:      %v", config.ProviderTimeout)
	logging.Info("  PROVIDER_MAX_RETRIES:  %d", config.ProviderMaxRetries)
	logging.Info("  YOUTUBE_BASE_URL:      %s", config.YouTubeBaseURL)

	if config.ProviderMaxRetries < 0 {
		logging.Warn("  Negative PROVIDER_MAX_RETRIES, using default: %d", defaultProviderMaxRetries)
		config.ProviderMaxRetries = defaultProviderMaxRetries
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	logging.Info("")
	logging.Info("  Feature availability:")
	logging.Info("    Metrics:     %s", enabledString(config.MetricsEnabled))

	return config, nil
}

func (c *Config) validate() error {
	if err := validatePort("PORT", c.Port); err != nil {
		return err
	}
	if c.MetricsEnabled {
		if err := validatePort("METRICS_PORT", c.MetricsPort); err != nil {
			return err
		}
		if c.MetricsPort == c.Port {
			return fmt.Errorf("METRICS_PORT must differ from PORT (both %s)", c.Port)
		}
	}

	u, err := url.Parse(c.YouTubeBaseURL)
	if err != nil {
		return fmt.Errorf("invalid YOUTUBE_BASE_URL %q: %w", c.YouTubeBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid YOUTUBE_BASE_URL %q: must be an absolute http(s) URL", c.YouTubeBaseURL)
	}

	return nil
}

func validatePort(key, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid %s %q: must be a number between 1 and 65535", key, value)
	}
	return nil
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		logging.Warn("Invalid duration value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// getEnvList splits a comma-separated variable, dropping empty items. An
// unset or all-empty value yields the split default.
func getEnvList(key, defaultValue string) []string {
	if items := splitList(os.Getenv(key)); len(items) > 0 {
		return items
	}
	return splitList(defaultValue)
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
