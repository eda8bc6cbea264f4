package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"research-blender-api/internal/handlers"
	"research-blender-api/internal/logging"
	"research-blender-api/internal/memory"
	"research-blender-api/internal/metrics"
	"research-blender-api/internal/middleware"
	"research-blender-api/internal/startup"
	"research-blender-api/internal/transcript"
	"research-blender-api/internal/youtube"

	"github.com/gorilla/mux"
)

const metricsCollectInterval = 15 * time.Second

func main() {
	startTime := time.Now()

	// Set GOMEMLIMIT before significant allocations
	memLimit := memory.ConfigureFromEnv()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	startup.LogMemoryConfig(memLimit)
	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)
	metrics.InitializeMetrics()

	// Initialize transcript provider
	startup.LogProviderInit(config.YouTubeBaseURL, config.TranscriptLanguages, config.ProviderTimeout, config.ProviderMaxRetries)
	client := youtube.NewClient(youtube.Config{
		BaseURL: config.YouTubeBaseURL,
		Timeout: config.ProviderTimeout,
		Retry:   youtube.RetryConfig{MaxRetries: config.ProviderMaxRetries},
	})
	fetcher := transcript.NewFetcher(client, transcript.WithLanguages(config.TranscriptLanguages...))

	// Initialize handlers
	h := handlers.New(fetcher)

	// Setup router
	router := setupRouter(h)
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           buildHandler(router, config),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = newMetricsServer(config.MetricsPort, h)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != http.ErrServerClosed {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	collector := metrics.NewCollector(startTime, metricsCollectInterval)
	collector.Start()

	// Start graceful shutdown handler
	done := make(chan struct{})
	go handleShutdown(srv, metricsSrv, collector, config.ShutdownTimeout, done)

	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
	<-done
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet, http.MethodHead).Name("health")
	api.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet).Name("version")

	yt := api.PathPrefix("/youtube").Subrouter()
	yt.HandleFunc("/transcript", h.GetTranscript).Methods(http.MethodPost).Name("youtube-transcript")
	yt.HandleFunc("/info", h.GetInfo).Methods(http.MethodPost).Name("youtube-info")

	return r
}

// buildHandler wraps the router in the middleware chain, outermost first:
// request ID, access log, metrics, CORS, compression, panic recovery.
func buildHandler(router *mux.Router, config *startup.Config) http.Handler {
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = config.CORSAllowedOrigins

	var handler http.Handler = router
	handler = middleware.Recover()(handler)
	handler = middleware.Compression(middleware.DefaultCompressionConfig())(handler)
	handler = middleware.CORS(corsConfig)(handler)
	handler = middleware.Metrics(middleware.DefaultMetricsConfig(), router)(handler)
	handler = middleware.Logger(loggingConfig)(handler)
	handler = middleware.RequestID()(handler)
	return handler
}

func newMetricsServer(port string, h *handlers.Handlers) *http.Server {
	r := mux.NewRouter()
	r.Handle("/metrics", h.MetricsHandler()).Methods(http.MethodGet)

	return &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func handleShutdown(srv, metricsSrv *http.Server, collector *metrics.Collector, timeout time.Duration, done chan<- struct{}) {
	defer close(done)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	startup.LogShutdownStep("Stopping metrics collector")
	collector.Stop()
	startup.LogShutdownStepComplete("Metrics collector stopped")

	startup.LogShutdownComplete()
}
