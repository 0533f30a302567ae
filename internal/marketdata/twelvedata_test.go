package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

func newTwelveDataServer(t *testing.T, h http.HandlerFunc) *TwelveDataProvider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewTwelveDataProvider(TwelveDataConfig{APIKey: "test-key", BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestTwelveDataProvider_FetchBars_Success(t *testing.T) {
	t.Parallel()

	p := newTwelveDataServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/time_series", r.URL.Path)
		assert.Equal(t, "AAPL", q.Get("symbol"))
		assert.Equal(t, "1day", q.Get("interval"))
		assert.Equal(t, "5", q.Get("outputsize"))
		assert.Equal(t, "test-key", q.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"values": [
				{"datetime": "2025-01-15", "open": "100.5", "high": "102.5", "low": "99.8", "close": "101.234", "volume": "3000"},
				{"datetime": "2025-01-14 09:30:00", "open": "99.0", "high": "101.0", "low": "98.5", "close": "100.0", "volume": "2000"}
			]
		}`))
	})

	bars, err := p.FetchBars(context.Background(), "AAPL", models.DailyWindow)
	require.NoError(t, err)
	require.Len(t, bars, 2)

	assert.Equal(t, 100.0, bars[0].Close, "oldest bar first")
	assert.Equal(t, 101.234, bars[1].Close, "most recent bar last")
	assert.Equal(t, 102.5, bars[1].High)
	assert.Equal(t, int64(3000), bars[1].Volume)
	assert.Equal(t, "twelvedata", p.Name())
}

func TestTwelveDataProvider_FetchBars_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
		wantErr error
	}{
		{"http error", http.StatusUnauthorized, ``, "twelvedata http 401", nil},
		{"api error", http.StatusOK, `{"status":"error","message":"Invalid API key"}`, "Invalid API key", nil},
		{"malformed json", http.StatusOK, `{invalid`, "twelvedata decode", nil},
		{"no values", http.StatusOK, `{"status":"ok","values":[]}`, "", ErrNoData},
		{"bad close", http.StatusOK, `{"status":"ok","values":[{"datetime":"2025-01-15","open":"1","high":"1","low":"1","close":"x","volume":"1"}]}`, "parse close", nil},
		{"bad datetime", http.StatusOK, `{"status":"ok","values":[{"datetime":"15/01/2025","open":"1","high":"1","low":"1","close":"1","volume":"1"}]}`, "parse time", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := newTwelveDataServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := p.FetchBars(context.Background(), "AAPL", models.DailyWindow)
			require.Error(t, err)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestTwelveDataProvider_MissingVolume(t *testing.T) {
	t.Parallel()

	p := newTwelveDataServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","values":[{"datetime":"2025-01-15","open":"1","high":"2","low":"0.5","close":"1.5"}]}`))
	})

	bars, err := p.FetchBars(context.Background(), "SPX", models.DailyWindow)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Zero(t, bars[0].Volume)
}

func TestTwelveDataParams(t *testing.T) {
	cases := []struct {
		window       models.Window
		wantInterval string
		wantSize     int
	}{
		{models.DailyWindow, "1day", 5},
		{models.IntradayWindow, "5min", 78},
		{models.Window{Period: "1y", Interval: "1wk"}, "1week", 53},
		{models.Window{Period: "6mo", Interval: "1mo"}, "1month", 7},
		{models.Window{Period: "1y", Interval: "1m"}, "1min", 5000},
		{models.Window{Period: "5d", Interval: "1h"}, "1h", 32},
	}
	for _, tc := range cases {
		t.Run(tc.window.String(), func(t *testing.T) {
			interval, size, err := twelveDataParams(tc.window)
			require.NoError(t, err)
			assert.Equal(t, tc.wantInterval, interval)
			assert.Equal(t, tc.wantSize, size)
		})
	}

	_, _, err := twelveDataParams(models.Window{Period: "7d", Interval: "3m"})
	assert.ErrorIs(t, err, ErrUnsupportedWindow)
}
