package models

import "time"

// Bar is one aggregated price observation for a symbol over a fixed interval.
//
// Providers return bars oldest first, so the most recent bar is the last element.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}
