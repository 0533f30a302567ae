// Package marketdata adapts third-party market-data APIs to a single Provider contract.
package marketdata

import (
	"context"
	"errors"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

var (
	// ErrNoData is returned when the upstream answered but carried no bars for the symbol.
	ErrNoData = errors.New("marketdata: no data")
	// ErrUnsupportedWindow is returned when a provider cannot express the requested window.
	ErrUnsupportedWindow = errors.New("marketdata: unsupported window")
	// ErrIncompleteBar is returned when a bar has a close but lacks open, high or low.
	ErrIncompleteBar = errors.New("marketdata: incomplete bar")
)

// Provider fetches the bar series of one symbol.
//
// Implementations must return bars oldest first (most recent bar last) and must
// never return an empty slice with a nil error: an empty series is ErrNoData.
type Provider interface {
	Name() string
	FetchBars(ctx context.Context, symbol string, window models.Window) ([]models.Bar, error)
}
