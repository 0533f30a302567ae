package models

import "fmt"

// Window describes the span of history requested from a provider (Period)
// and the granularity of each bar inside it (Interval), using the
// provider-neutral notation "7d", "1d", "5m", "1mo", ...
type Window struct {
	Period   string
	Interval string
}

var (
	// DailyWindow feeds the daily snapshot: a week of daily bars.
	DailyWindow = Window{Period: "7d", Interval: "1d"}
	// IntradayWindow feeds the intraday snapshot: today's 5 minute bars.
	IntradayWindow = Window{Period: "1d", Interval: "5m"}
)

// SupportedPeriods lists the lookback windows every provider understands.
var SupportedPeriods = []string{"1d", "5d", "7d", "1mo", "3mo", "6mo", "1y"}

// SupportedIntervals lists the bar granularities every provider understands.
var SupportedIntervals = []string{"1m", "5m", "15m", "30m", "1h", "1d", "1wk", "1mo"}

// Validate reports whether both parts of the window are supported.
func (w Window) Validate() error {
	if !contains(SupportedPeriods, w.Period) {
		return fmt.Errorf("unsupported period %q", w.Period)
	}
	if !contains(SupportedIntervals, w.Interval) {
		return fmt.Errorf("unsupported interval %q", w.Interval)
	}
	return nil
}

func (w Window) String() string {
	return "period=" + w.Period + ",interval=" + w.Interval
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
