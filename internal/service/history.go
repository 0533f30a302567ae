package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/marketdata"
)

// ErrInvalidWindow wraps window validation failures so handlers can answer 400.
var ErrInvalidWindow = errors.New("invalid window")

// HistoryService exposes the raw bar series of a single symbol.
type HistoryService interface {
	GetHistory(ctx context.Context, symbol string, window models.Window) ([]models.Bar, error)
}

type historyService struct {
	provider marketdata.Provider
}

// NewHistoryService returns a HistoryService backed by provider.
func NewHistoryService(provider marketdata.Provider) HistoryService {
	return &historyService{provider: provider}
}

// GetHistory validates the window before calling the provider. An empty series
// surfaces as marketdata.ErrNoData.
func (s *historyService) GetHistory(ctx context.Context, symbol string, window models.Window) ([]models.Bar, error) {
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	bars, err := s.provider.FetchBars(ctx, symbol, window)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, marketdata.ErrNoData)
	}
	return bars, nil
}
