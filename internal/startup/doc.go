// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig]:
//
//   - PORT: API server port (default: 5000)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown budget as Go duration (default: 30s)
//   - CORS_ALLOWED_ORIGINS: Comma-separated allowed origins (default: *)
//   - TRANSCRIPT_LANGUAGES: Comma-separated preferred languages (default: en,en-US,en-GB)
//   - PROVIDER_TIMEOUT: Per-request timeout for YouTube calls (default: 30s)
//   - PROVIDER_MAX_RETRIES: Retries of transient YouTube failures (default: 2)
//   - YOUTUBE_BASE_URL: YouTube origin (default: https://www.youtube.com)
//
// Malformed booleans, integers and durations fall back to their defaults
// with a warning. Invalid ports or base URL are an error.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Example Usage
//
//	config, err := startup.LoadConfig()
//	if err != nil {
//	    startup.LogFatal("Configuration error: %v", err)
//	}
//
//	startup.LogServerStarted(startup.ServerConfig{
//	    Port:            config.Port,
//	    MetricsPort:     config.MetricsPort,
//	    MetricsEnabled:  config.MetricsEnabled,
//	    StartupDuration: time.Since(startTime),
//	})
//
//	// On shutdown...
//	startup.LogShutdownInitiated("SIGTERM")
//	startup.LogShutdownComplete()
package startup
