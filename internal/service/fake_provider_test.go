package service

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// fakeProvider serves canned bars per symbol and records the calls it receives.
type fakeProvider struct {
	mu      sync.Mutex
	bars    map[string][]models.Bar
	errs    map[string]error
	delay   map[string]time.Duration
	calls   []string
	windows []models.Window
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) FetchBars(ctx context.Context, symbol string, window models.Window) ([]models.Bar, error) {
	f.mu.Lock()
	f.calls = append(f.calls, symbol)
	f.windows = append(f.windows, window)
	d := f.delay[symbol]
	err := f.errs[symbol]
	bars := f.bars[symbol]
	f.mu.Unlock()

	if d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return bars, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// closes builds a series whose closes are the given values, oldest first.
func closes(vals ...float64) []models.Bar {
	out := make([]models.Bar, len(vals))
	base := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	for i, v := range vals {
		out[i] = models.Bar{Time: base.AddDate(0, 0, i), Open: v, High: v + 1, Low: v - 1, Close: v, Volume: 1000}
	}
	return out
}
