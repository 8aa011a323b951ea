package model

import (
	"errors"
	"time"
)

// ErrUnknownSymbol is returned when a ticker is not in the supported set.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Source identifies which path produced a payload.
type Source string

const (
	SourceLive  Source = "live"
	SourceCache Source = "cache"
	SourceDemo  Source = "demo"
)

type Quote struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name,omitempty"`
	Price         float64   `json:"price"`
	ChangePercent float64   `json:"change_percent"`
	PreviousClose float64   `json:"previous_close"`
	DayHigh       float64   `json:"day_high"`
	DayLow        float64   `json:"day_low"`
	Volume        int64     `json:"volume"`
	Week52High    float64   `json:"week_52_high"`
	Week52Low     float64   `json:"week_52_low"`
	Timestamp     time.Time `json:"timestamp"`
}

// Candle is one OHLCV bar of a daily price series.
type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

type Series struct {
	Symbol  string   `json:"symbol"`
	Range   Range    `json:"range"`
	Candles []Candle `json:"candles"`
}

// QuoteResult wraps a quote with the path that produced it.
type QuoteResult struct {
	Quote    Quote  `json:"quote"`
	Source   Source `json:"source"`
	DemoMode bool   `json:"demo_mode"`
}

type SeriesResult struct {
	Series   Series `json:"series"`
	Source   Source `json:"source"`
	DemoMode bool   `json:"demo_mode"`
}

// Range selects how far back a history request reaches.
type Range string

const (
	Range1Month  Range = "1mo"
	Range3Month  Range = "3mo"
	Range6Month  Range = "6mo"
	Range1Year   Range = "1y"
	DefaultRange       = Range1Month
)

// Days returns the number of daily candles a range covers.
func (r Range) Days() int {
	switch r {
	case Range1Month:
		return 30
	case Range3Month:
		return 90
	case Range6Month:
		return 180
	case Range1Year:
		return 365
	default:
		return 30
	}
}

// ParseRange maps a query-string value to a Range, defaulting on anything
// unrecognised rather than failing the request.
func ParseRange(s string) Range {
	switch Range(s) {
	case Range1Month, Range3Month, Range6Month, Range1Year:
		return Range(s)
	default:
		return DefaultRange
	}
}
