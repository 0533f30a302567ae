package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Watchlist quote aggregation over upstream market data providers.
//  @termsOfService  https://github.com/guttosm/stockpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:5000
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        quotes
//  @tag.description Watchlist snapshot and per-symbol history
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/stockpulse/config"
	_ "github.com/guttosm/stockpulse/docs" // swagger docs
	"github.com/guttosm/stockpulse/internal/app"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - addr (string): host:port where the server will listen for incoming requests.
//   - requestTimeout (time.Duration): deadline of request contexts; the write
//     timeout is kept above it so a timed-out request can still send its 500.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, addr string, requestTimeout time.Duration) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// applyFlags overrides configuration values with CLI flags that were set.
func applyFlags(cfg *config.Config, port, variant string, parallel int) error {
	if port != "" {
		cfg.Server.Port = port
	}
	if variant != "" {
		v, ok := models.ParseVariant(variant)
		if !ok {
			return errors.New("--variant must be daily or intraday")
		}
		cfg.Quotes.Variant = string(v)
	}
	if parallel < 0 {
		return errors.New("--parallel must be >= 0")
	}
	if parallel > 0 {
		cfg.Quotes.Parallelism = parallel
	}
	return nil
}

// main is the entry point of the stockpulse application.
//
// Flags:
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --variant:  Snapshot served by /api/stock_data ("daily" or "intraday"). Defaults to QUOTES_VARIANT.
//   - --parallel: Upstream calls in flight per request. 0 keeps QUOTES_PARALLELISM.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	variant := flag.String("variant", config.AppConfig.Quotes.Variant, "Snapshot variant: daily or intraday")
	parallel := flag.Int("parallel", 0, "Upstream calls in flight per request (0=use QUOTES_PARALLELISM)")
	flag.Parse()

	if err := applyFlags(&config.AppConfig, *port, *variant, *parallel); err != nil {
		logger.L().Fatal().Err(err).Msg("invalid flags")
	}

	if config.AppConfig.Server.Debug {
		logger.SetLevel(zerolog.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.L().Info().Msg("starting API server")

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	addr := net.JoinHostPort(config.AppConfig.Server.Host, config.AppConfig.Server.Port)
	server := startServer(router, addr, config.AppConfig.Server.RequestTimeout)
	gracefulShutdown(ctx, server, cleanup)
}
