package app

import (
	"fmt"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/marketdata"
)

// NewProvider builds the market data provider selected by cfg.MarketData.Provider.
//
// Parameters:
//   - cfg (config.Config): The application configuration object containing MarketData settings.
//
// Returns:
//   - marketdata.Provider: a provider safe for concurrent use.
//   - error: if the provider name is unknown or its settings are incomplete.
//
// Example usage:
//
//	provider, err := app.NewProvider(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("❌ market data: %v", err)
//	}
func NewProvider(cfg config.Config) (marketdata.Provider, error) {
	md := cfg.MarketData
	switch md.Provider {
	case "yahoo", "":
		if md.YahooBaseURL == "" {
			return nil, fmt.Errorf("yahoo provider: base url is empty")
		}
		return marketdata.NewYahooProvider(marketdata.YahooConfig{
			BaseURL: md.YahooBaseURL,
			Timeout: md.Timeout,
		}), nil
	case "twelvedata":
		if md.TwelveDataAPIKey == "" {
			return nil, fmt.Errorf("twelvedata provider: api key is empty")
		}
		return marketdata.NewTwelveDataProvider(marketdata.TwelveDataConfig{
			APIKey:  md.TwelveDataAPIKey,
			BaseURL: md.TwelveDataBaseURL,
			Timeout: md.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown market data provider %q", md.Provider)
	}
}

// providerOpener is an indirection used by InitializeApp; overridden in tests to avoid real upstreams.
var providerOpener = NewProvider
