package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
)

const yahooUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// YahooConfig configures YahooProvider.
type YahooConfig struct {
	BaseURL string        // e.g. "https://query1.finance.yahoo.com/v8/finance/chart"
	Timeout time.Duration // whole-request timeout per call
}

// YahooProvider reads bars from the Yahoo Finance v8 chart endpoint.
type YahooProvider struct {
	client *resty.Client
}

var _ Provider = (*YahooProvider)(nil)

// NewYahooProvider builds a provider backed by a dedicated resty client.
func NewYahooProvider(cfg YahooConfig) *YahooProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeaders(map[string]string{
			"Accept":          "application/json",
			"Accept-Encoding": "gzip, br",
			"User-Agent":      yahooUserAgent,
		})
	client.OnAfterResponse(decompressMiddleware)

	return &YahooProvider{client: client}
}

// Name implements Provider.
func (y *YahooProvider) Name() string { return "yahoo" }

// yahooChartResponse is the subset of the chart payload we read.
// Price arrays hold nulls for slots without trades, hence the pointers.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchBars implements Provider.
//
// Rows without a close are slots without trades and are dropped. A row with a
// close but no open, high or low is malformed and fails the call with
// ErrIncompleteBar. A missing volume reads as 0.
func (y *YahooProvider) FetchBars(ctx context.Context, symbol string, window models.Window) ([]models.Bar, error) {
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedWindow, err)
	}

	resp, err := y.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"range":    window.Period,
			"interval": window.Interval,
		}).
		Get("/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo request %s: %w", symbol, err)
	}

	var body yahooChartResponse
	decodeErr := json.Unmarshal(resp.Body(), &body)

	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo %s: %s: %s", symbol, body.Chart.Error.Code, body.Chart.Error.Description)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo http %d for %s", resp.StatusCode(), symbol)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo decode %s: %w", symbol, decodeErr)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, ErrNoData)
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]models.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := at(quote.Close, i)
		if c == nil {
			continue
		}
		o, h, l := at(quote.Open, i), at(quote.High, i), at(quote.Low, i)
		if o == nil || h == nil || l == nil {
			return nil, fmt.Errorf("yahoo %s at %d: %w", symbol, ts, ErrIncompleteBar)
		}
		bar := models.Bar{
			Time:  time.Unix(ts, 0).UTC(),
			Open:  *o,
			High:  *h,
			Low:   *l,
			Close: *c,
		}
		if v := at(quote.Volume, i); v != nil {
			bar.Volume = *v
		}
		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, ErrNoData)
	}

	logger.Ctx(ctx).Trace().Str("symbol", symbol).Int("bars", len(bars)).Msg("yahoo bars fetched")
	return bars, nil
}

// at returns s[i], or nil when the upstream arrays are shorter than the timestamps.
func at[T any](s []*T, i int) *T {
	if i >= len(s) {
		return nil
	}
	return s[i]
}
