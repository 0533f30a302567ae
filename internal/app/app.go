package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market data provider using providerOpener().
//   - Initializes the service layer (QuoteService, HistoryService).
//   - Creates the HTTP handler layer for the configured variant.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	variant, ok := models.ParseVariant(cfg.Quotes.Variant)
	if !ok {
		return nil, nil, fmt.Errorf("unknown quotes variant %q", cfg.Quotes.Variant)
	}

	// indirection for unit testing
	provider, err := providerOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize market data provider: %w", err)
	}

	// Initialize service layer (business logic)
	quotes := service.NewQuoteService(provider, cfg.Quotes.Symbols, cfg.Quotes.Parallelism)
	history := service.NewHistoryService(provider)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(quotes, history, variant)

	// Setup Gin router with routes
	router := api.NewRouter(handler, api.RouterOptions{
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowOrigins:   cfg.CORS.AllowOrigins,
	})

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(quotes.Ready)
	healthHandler.Register(router)

	logger.L().Info().
		Str("provider", provider.Name()).
		Str("variant", string(variant)).
		Int("symbols", len(cfg.Quotes.Symbols)).
		Int("parallelism", cfg.Quotes.Parallelism).
		Msg("application initialized")

	// Providers hold no resources that need closing
	cleanup := func() {}

	return router, cleanup, nil
}
