// Package service holds the business logic behind the HTTP handlers.
package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/marketdata"
)

// QuoteService builds the snapshot served by GET /api/stock_data.
//
// Both snapshots are all-or-nothing: they return either one entry per configured
// symbol, in configured order, or an error and no entries.
type QuoteService interface {
	DailySnapshot(ctx context.Context) ([]models.DailyQuote, error)
	IntradaySnapshot(ctx context.Context) ([]string, error)
	Symbols() []string
	Ready() error
}

// SymbolError reports which symbol aborted a snapshot.
type SymbolError struct {
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string { return e.Symbol + ": " + e.Err.Error() }

func (e *SymbolError) Unwrap() error { return e.Err }

type quoteService struct {
	provider    marketdata.Provider
	symbols     []string
	parallelism int
}

// NewQuoteService wires a provider to an ordered watchlist.
//
// symbols is copied, so later changes to the caller's slice are not observed.
// parallelism bounds the provider calls in flight per snapshot; values below 1
// are treated as 1, which issues the calls one after another in symbol order.
func NewQuoteService(provider marketdata.Provider, symbols []string, parallelism int) QuoteService {
	return &quoteService{
		provider:    provider,
		symbols:     append([]string(nil), symbols...),
		parallelism: max(parallelism, 1),
	}
}

func (s *quoteService) Symbols() []string {
	return append([]string(nil), s.symbols...)
}

func (s *quoteService) Ready() error {
	if s.provider == nil {
		return fmt.Errorf("market data provider not configured")
	}
	if len(s.symbols) == 0 {
		return fmt.Errorf("no symbols configured")
	}
	return nil
}

func (s *quoteService) DailySnapshot(ctx context.Context) ([]models.DailyQuote, error) {
	return collect(ctx, s, models.DailyWindow, func(symbol string, bars []models.Bar) (models.DailyQuote, error) {
		today, yesterday, err := lastTwo(bars)
		if err != nil {
			return models.DailyQuote{}, err
		}
		pct, err := PercentChange(today.Close, yesterday.Close)
		if err != nil {
			return models.DailyQuote{}, err
		}
		if err := checkRange(today); err != nil {
			return models.DailyQuote{}, err
		}
		return models.DailyQuote{
			Symbol:           symbol,
			TodayClose:       today.Close,
			YesterdayClose:   yesterday.Close,
			PercentageChange: pct,
			High:             today.High,
			Low:              today.Low,
		}, nil
	})
}

func (s *quoteService) IntradaySnapshot(ctx context.Context) ([]string, error) {
	return collect(ctx, s, models.IntradayWindow, func(symbol string, bars []models.Bar) (string, error) {
		today, yesterday, err := lastTwo(bars)
		if err != nil {
			return "", err
		}
		pct, err := PercentChange(today.Close, yesterday.Close)
		if err != nil {
			return "", err
		}
		return formatIntraday(symbol, today.Close, pct), nil
	})
}

// collect fetches every symbol and folds the bars into one entry per symbol.
//
// The first failure cancels the group context, no further symbol is started and
// the partial results are dropped. Entries are stored by index so the output
// order is the watchlist order whatever the parallelism.
func collect[T any](ctx context.Context, s *quoteService, window models.Window, build func(string, []models.Bar) (T, error)) ([]T, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	out := make([]T, len(s.symbols))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i, symbol := range s.symbols {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bars, err := s.provider.FetchBars(gctx, symbol, window)
			if err != nil {
				return &SymbolError{Symbol: symbol, Err: err}
			}
			entry, err := build(symbol, bars)
			if err != nil {
				return &SymbolError{Symbol: symbol, Err: err}
			}
			out[i] = entry
			logger.Ctx(ctx).Debug().Str("symbol", symbol).Int("bars", len(bars)).Msg("symbol aggregated")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the parent context may have been cancelled between the last fetch and Wait
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
