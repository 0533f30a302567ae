package dto

// CandleResponse is one element of the GET /api/stock/{symbol}/history array.
type CandleResponse struct {
	Time   int64   `json:"time" example:"1736899200"` // Bar start, Unix seconds
	Open   float64 `json:"open" example:"150.00"`
	High   float64 `json:"high" example:"155.00"`
	Low    float64 `json:"low" example:"149.00"`
	Close  float64 `json:"close" example:"154.50"`
	Volume int64   `json:"volume" example:"1000000"`
}
