package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultSymbols is the ordered watchlist served when QUOTES_SYMBOLS is not set.
var DefaultSymbols = []string{
	"AAPL", "TSLA", "GOOGL", "MSFT", "NVDA", "AMZN", "META", "NFLX", "BA", "DIS",
	"IBM", "AMD", "INTC", "V", "PYPL", "JPM", "GS", "TSM", "XOM", "WMT",
}

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the quote watchlist and the upstream market-data provider.
//
// Example ENV equivalent:
//
//	SERVER_HOST=0.0.0.0
//	SERVER_PORT=5000
//	QUOTES_SYMBOLS=AAPL,MSFT,NVDA
//	QUOTES_VARIANT=daily
//	MARKETDATA_PROVIDER=yahoo
type Config struct {
	Server     ServerConfig     // HTTP server configuration
	Quotes     QuotesConfig     // Watchlist and snapshot settings
	MarketData MarketDataConfig // Upstream provider settings
	CORS       CORSConfig       // Cross-origin settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        // Interface to bind (e.g., "0.0.0.0")
	Port           string        // The TCP port the HTTP server will listen on (e.g., "5000")
	RequestTimeout time.Duration // Deadline applied to every request context
	Debug          bool          // Enables gin debug mode and debug logging
}

// QuotesConfig defines which symbols are aggregated and how.
//
// Fields:
//   - Symbols: ordered watchlist; response order follows this slice.
//   - Variant: "daily" (7d/1d structured records) or "intraday" (1d/5m display strings).
//   - Parallelism: upstream calls in flight per request; 1 keeps them strictly sequential.
type QuotesConfig struct {
	Symbols     []string
	Variant     string
	Parallelism int
}

// MarketDataConfig selects and configures the upstream provider.
type MarketDataConfig struct {
	Provider          string        // "yahoo" or "twelvedata"
	Timeout           time.Duration // Per-call HTTP timeout
	YahooBaseURL      string
	TwelveDataBaseURL string
	TwelveDataAPIKey  string
}

// CORSConfig lists the origins allowed to call the API. "*" allows any origin.
type CORSConfig struct {
	AllowOrigins []string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "60s")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("QUOTES_SYMBOLS", strings.Join(DefaultSymbols, ","))
	viper.SetDefault("QUOTES_VARIANT", "daily")
	viper.SetDefault("QUOTES_PARALLELISM", 1)
	viper.SetDefault("MARKETDATA_PROVIDER", "yahoo")
	viper.SetDefault("MARKETDATA_TIMEOUT", "10s")
	viper.SetDefault("YAHOO_BASE_URL", "https://query1.finance.yahoo.com/v8/finance/chart")
	viper.SetDefault("TWELVE_DATA_BASE_URL", "https://api.twelvedata.com")
	viper.SetDefault("TWELVE_DATA_API_KEY", "")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Host:           viper.GetString("SERVER_HOST"),
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
			Debug:          viper.GetBool("APP_DEBUG"),
		},
		Quotes: QuotesConfig{
			Symbols:     splitList(viper.GetString("QUOTES_SYMBOLS"), true),
			Variant:     strings.ToLower(strings.TrimSpace(viper.GetString("QUOTES_VARIANT"))),
			Parallelism: viper.GetInt("QUOTES_PARALLELISM"),
		},
		MarketData: MarketDataConfig{
			Provider:          strings.ToLower(strings.TrimSpace(viper.GetString("MARKETDATA_PROVIDER"))),
			Timeout:           viper.GetDuration("MARKETDATA_TIMEOUT"),
			YahooBaseURL:      viper.GetString("YAHOO_BASE_URL"),
			TwelveDataBaseURL: viper.GetString("TWELVE_DATA_BASE_URL"),
			TwelveDataAPIKey:  viper.GetString("TWELVE_DATA_API_KEY"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(viper.GetString("CORS_ALLOW_ORIGINS"), false),
		},
	}

	validateConfig()
}

// splitList turns a comma separated value into a trimmed slice, dropping empty entries.
func splitList(raw string, upper bool) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if upper {
			p = strings.ToUpper(p)
		}
		out = append(out, p)
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing or invalid ones in a slice.
//   - If any are found, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "SERVER_REQUEST_TIMEOUT")
	}
	if len(AppConfig.Quotes.Symbols) == 0 {
		missing = append(missing, "QUOTES_SYMBOLS")
	}
	if AppConfig.Quotes.Variant != "daily" && AppConfig.Quotes.Variant != "intraday" {
		missing = append(missing, "QUOTES_VARIANT")
	}
	if AppConfig.Quotes.Parallelism < 1 {
		missing = append(missing, "QUOTES_PARALLELISM")
	}
	switch AppConfig.MarketData.Provider {
	case "yahoo":
		if AppConfig.MarketData.YahooBaseURL == "" {
			missing = append(missing, "YAHOO_BASE_URL")
		}
	case "twelvedata":
		if AppConfig.MarketData.TwelveDataBaseURL == "" {
			missing = append(missing, "TWELVE_DATA_BASE_URL")
		}
		if AppConfig.MarketData.TwelveDataAPIKey == "" {
			missing = append(missing, "TWELVE_DATA_API_KEY")
		}
	default:
		missing = append(missing, "MARKETDATA_PROVIDER")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
