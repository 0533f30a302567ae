package models

// Variant selects which snapshot /api/stock_data serves.
type Variant string

const (
	// VariantDaily serves DailyQuote records built from DailyWindow.
	VariantDaily Variant = "daily"
	// VariantIntraday serves display strings built from IntradayWindow.
	VariantIntraday Variant = "intraday"
)

// ParseVariant maps a config value to a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch Variant(s) {
	case VariantDaily, VariantIntraday:
		return Variant(s), true
	default:
		return "", false
	}
}

// DailyQuote summarizes one symbol's movement between its last two daily closes.
//
// Fields:
//   - Symbol: ticker as configured (e.g., "AAPL").
//   - TodayClose: close of the most recent bar.
//   - YesterdayClose: close of the bar before it.
//   - PercentageChange: ((today - yesterday) / yesterday) * 100, rounded to 3 decimals.
//   - High, Low: range of the most recent bar.
//
// swagger:model DailyQuote
type DailyQuote struct {
	Symbol           string  `json:"symbol" example:"AAPL"`
	TodayClose       float64 `json:"today_close" example:"101.234"`
	YesterdayClose   float64 `json:"yesterday_close" example:"100"`
	PercentageChange float64 `json:"percentage_change" example:"1.234"`
	High             float64 `json:"high" example:"102.5"`
	Low              float64 `json:"low" example:"99.8"`
}
