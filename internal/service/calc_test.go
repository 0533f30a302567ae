package service

import (
	"errors"
	"math"
	"testing"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name      string
		today     float64
		yesterday float64
		want      float64
		wantErr   error
	}{
		{"up", 101.234, 100, 1.234, nil},
		{"down", 99, 100, -1, nil},
		{"flat", 42, 42, 0, nil},
		{"rounds to 3 decimals", 102, 3, 3300, nil},
		{"rounds third decimal", 100.12345, 100, 0.123, nil},
		{"zero prior close", 10, 0, 0, ErrZeroPriorClose},
		{"nan", math.NaN(), 10, 0, ErrNonFinite},
		{"inf", 10, math.Inf(1), 0, ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PercentChange(tc.today, tc.yesterday)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err=%v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("PercentChange(%v,%v)=%v, want %v", tc.today, tc.yesterday, got, tc.want)
			}
		})
	}
}

func TestPercentChange_MatchesFormula(t *testing.T) {
	pairs := [][2]float64{{187.44, 185.12}, {0.5, 0.75}, {1234.5678, 1200}, {3.3333, 3}}
	for _, p := range pairs {
		got, err := PercentChange(p[0], p[1])
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		want := math.Round(((p[0]-p[1])/p[1])*100*1000) / 1000
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("PercentChange(%v,%v)=%v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestLastTwo(t *testing.T) {
	if _, _, err := lastTwo(nil); !errors.Is(err, ErrInsufficientBars) {
		t.Fatalf("nil bars: err=%v", err)
	}
	if _, _, err := lastTwo(closes(1)); !errors.Is(err, ErrInsufficientBars) {
		t.Fatalf("one bar: err=%v", err)
	}
	today, yesterday, err := lastTwo(closes(1, 2, 3))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if today.Close != 3 || yesterday.Close != 2 {
		t.Fatalf("today=%v yesterday=%v", today.Close, yesterday.Close)
	}
}

func TestFormatIntraday(t *testing.T) {
	cases := []struct {
		symbol string
		close  float64
		pct    float64
		want   string
	}{
		{"AAPL", 101.234, 1.234, "AAPL: 101.234: 1.234%"},
		{"MSFT", 150, 0, "MSFT: 150.0: 0.0%"},
		{"TSLA", 245.25, -0.5, "TSLA: 245.25: -0.5%"},
		{"IBM", 150, math.Copysign(0, -1), "IBM: 150.0: -0.0%"},
	}
	for _, tc := range cases {
		if got := formatIntraday(tc.symbol, tc.close, tc.pct); got != tc.want {
			t.Fatalf("formatIntraday=%q, want %q", got, tc.want)
		}
	}
}

func TestRound3(t *testing.T) {
	cases := []struct {
		name    string
		in      float64
		want    float64
		wantNeg bool
	}{
		{name: "plain", in: 1.23449, want: 1.234},
		{name: "half away from zero", in: 1.2345, want: 1.235},
		{name: "negative half away from zero", in: -1.2345, want: -1.235},
		// the binary value of 2.0005 is just below the tie; rounding follows the decimal form
		{name: "decimal tie", in: 2.0005, want: 2.001},
		{name: "small negative keeps sign", in: -0.0001, want: 0, wantNeg: true},
		{name: "small positive", in: 0.0001, want: 0},
		{name: "zero", in: 0, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := round3(tc.in)
			if got != tc.want {
				t.Fatalf("round3(%v)=%v, want %v", tc.in, got, tc.want)
			}
			if math.Signbit(got) != tc.wantNeg {
				t.Fatalf("round3(%v) sign bit=%v, want %v", tc.in, math.Signbit(got), tc.wantNeg)
			}
		})
	}
}

func TestPercentChange_TinyDropRendersNegativeZero(t *testing.T) {
	pct, err := PercentChange(150, 150.0001)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := formatIntraday("IBM", 150, pct); got != "IBM: 150.0: -0.0%" {
		t.Fatalf("formatIntraday=%q", got)
	}
}

func TestCheckRange(t *testing.T) {
	cases := []struct {
		name    string
		bar     models.Bar
		wantErr error
	}{
		{name: "valid", bar: models.Bar{High: 102.5, Low: 99.8, Close: 101}},
		{name: "flat bar", bar: models.Bar{High: 100, Low: 100, Close: 100}},
		{name: "inverted", bar: models.Bar{High: 99, Low: 100, Close: 100}, wantErr: ErrInvalidRange},
		{name: "zero filled", bar: models.Bar{Close: 101}, wantErr: ErrInvalidRange},
		{name: "nan high", bar: models.Bar{High: math.NaN(), Low: 1, Close: 1}, wantErr: ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkRange(tc.bar)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err=%v, want %v", err, tc.wantErr)
			}
		})
	}
}
