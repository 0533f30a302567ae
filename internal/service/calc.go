package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

var (
	// ErrInsufficientBars is returned when a series has fewer than two bars to compare.
	ErrInsufficientBars = errors.New("fewer than 2 bars")
	// ErrZeroPriorClose is returned when the reference close is zero.
	ErrZeroPriorClose = errors.New("prior close is zero")
	// ErrNonFinite is returned when a price is NaN or infinite.
	ErrNonFinite = errors.New("non-finite price")
	// ErrInvalidRange is returned when a bar's high/low are missing or inverted.
	ErrInvalidRange = errors.New("invalid high/low range")
)

// lastTwo returns the most recent bar and the one before it.
//
// The two bars are compared as-is; no check is made that they are consecutive
// trading sessions.
func lastTwo(bars []models.Bar) (today, yesterday models.Bar, err error) {
	if len(bars) < 2 {
		return models.Bar{}, models.Bar{}, fmt.Errorf("%w: got %d", ErrInsufficientBars, len(bars))
	}
	return bars[len(bars)-1], bars[len(bars)-2], nil
}

// PercentChange returns ((today - yesterday) / yesterday) * 100 rounded to 3 decimals.
func PercentChange(today, yesterday float64) (float64, error) {
	if !finite(today) || !finite(yesterday) {
		return 0, ErrNonFinite
	}
	if yesterday == 0 {
		return 0, ErrZeroPriorClose
	}
	pct := ((today - yesterday) / yesterday) * 100
	if !finite(pct) {
		return 0, ErrNonFinite
	}
	return round3(pct), nil
}

// round3 rounds half away from zero on the shortest decimal form of v, so
// 2.0005 becomes 2.001 even though its binary value sits just below the tie.
// A negative input that rounds to zero keeps its sign (-0.0001 gives -0).
func round3(v float64) float64 {
	r := decimal.NewFromFloat(v).Round(3).InexactFloat64()
	if r == 0 && v < 0 {
		return math.Copysign(0, -1)
	}
	return r
}

// checkRange rejects a bar whose high/low cannot be reported: non-finite,
// inverted, or both zero while the bar has a close (a zero-filled gap).
func checkRange(b models.Bar) error {
	if !finite(b.High) || !finite(b.Low) {
		return ErrNonFinite
	}
	if b.High < b.Low {
		return fmt.Errorf("%w: high %v < low %v", ErrInvalidRange, b.High, b.Low)
	}
	if b.High == 0 && b.Low == 0 && b.Close != 0 {
		return fmt.Errorf("%w: missing high/low", ErrInvalidRange)
	}
	return nil
}

// formatIntraday renders "{symbol}: {close}: {pct}%".
func formatIntraday(symbol string, close, pct float64) string {
	return symbol + ": " + formatFloat(close) + ": " + formatFloat(pct) + "%"
}

// formatFloat prints the shortest representation that round-trips, always
// keeping a fractional part ("150.0", "101.234", "-0.5").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
