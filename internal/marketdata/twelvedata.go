package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

const twelveDataMaxOutputSize = 5000

// twelveDataIntervals maps window intervals to Twelve Data interval names.
var twelveDataIntervals = map[string]string{
	"1m":  "1min",
	"5m":  "5min",
	"15m": "15min",
	"30m": "30min",
	"1h":  "1h",
	"1d":  "1day",
	"1wk": "1week",
	"1mo": "1month",
}

// intradayMinutes is the bar length of sub-daily intervals.
var intradayMinutes = map[string]int{
	"1m":  1,
	"5m":  5,
	"15m": 15,
	"30m": 30,
	"1h":  60,
}

// periodSpan is the calendar and trading-day length of each supported period.
var periodSpan = map[string]struct{ calendarDays, tradingDays int }{
	"1d":  {1, 1},
	"5d":  {5, 5},
	"7d":  {7, 5},
	"1mo": {30, 21},
	"3mo": {91, 63},
	"6mo": {182, 126},
	"1y":  {365, 252},
}

// sessionMinutes is the length of a regular US equity session.
const sessionMinutes = 390

// TwelveDataConfig configures TwelveDataProvider.
type TwelveDataConfig struct {
	APIKey  string
	BaseURL string // e.g. "https://api.twelvedata.com"
	Timeout time.Duration
}

// TwelveDataProvider reads bars from the Twelve Data time_series endpoint.
type TwelveDataProvider struct {
	apiKey string
	client *resty.Client
}

var _ Provider = (*TwelveDataProvider)(nil)

// NewTwelveDataProvider builds a provider backed by a dedicated resty client.
func NewTwelveDataProvider(cfg TwelveDataConfig) *TwelveDataProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	client.OnAfterResponse(decompressMiddleware)

	return &TwelveDataProvider{apiKey: cfg.APIKey, client: client}
}

// Name implements Provider.
func (t *TwelveDataProvider) Name() string { return "twelvedata" }

type twelveDataResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Values  []struct {
		Datetime string `json:"datetime"`
		Open     string `json:"open"`
		High     string `json:"high"`
		Low      string `json:"low"`
		Close    string `json:"close"`
		Volume   string `json:"volume"`
	} `json:"values"`
}

// FetchBars implements Provider. Twelve Data lists values newest first; they are
// reversed so the most recent bar ends up last.
func (t *TwelveDataProvider) FetchBars(ctx context.Context, symbol string, window models.Window) ([]models.Bar, error) {
	interval, outputSize, err := twelveDataParams(window)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":     symbol,
			"interval":   interval,
			"outputsize": strconv.Itoa(outputSize),
			"apikey":     t.apiKey,
		}).
		Get("/time_series")
	if err != nil {
		return nil, fmt.Errorf("twelvedata request %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("twelvedata http %d for %s", resp.StatusCode(), symbol)
	}

	var body twelveDataResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("twelvedata decode %s: %w", symbol, err)
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("twelvedata %s: %s", symbol, body.Message)
	}
	if len(body.Values) == 0 {
		return nil, fmt.Errorf("twelvedata %s: %w", symbol, ErrNoData)
	}

	bars := make([]models.Bar, 0, len(body.Values))
	for _, v := range body.Values {
		tm, err := time.Parse("2006-01-02 15:04:05", v.Datetime)
		if err != nil {
			tm, err = time.Parse("2006-01-02", v.Datetime)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		// volume is absent for some instruments (indices, FX)
		var vol int64
		if v.Volume != "" {
			vol, err = strconv.ParseInt(v.Volume, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
			}
		}
		bars = append(bars, models.Bar{Time: tm, Open: o, High: h, Low: l, Close: c, Volume: vol})
	}

	slices.Reverse(bars)
	return bars, nil
}

// twelveDataParams translates a window into Twelve Data's interval name and the
// number of bars that cover the period.
func twelveDataParams(window models.Window) (string, int, error) {
	if err := window.Validate(); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrUnsupportedWindow, err)
	}
	interval := twelveDataIntervals[window.Interval]
	span := periodSpan[window.Period]

	var n int
	if m, ok := intradayMinutes[window.Interval]; ok {
		n = span.tradingDays * sessionMinutes / m
	} else {
		switch window.Interval {
		case "1d":
			n = span.tradingDays
		case "1wk":
			n = (span.calendarDays + 6) / 7
		case "1mo":
			n = (span.calendarDays + 29) / 30
		}
	}

	n = max(n, 1)
	n = min(n, twelveDataMaxOutputSize)
	return interval, n, nil
}
