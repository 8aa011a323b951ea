package demo

import (
	"context"
	"hash/fnv"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"pulseboard/internal/domain/model"
	"pulseboard/internal/domain/port"
)

// fixtureDays is the length of every generated series; history requests
// slice the tail of it.
const fixtureDays = 365

// fixtureEnd anchors the series so the fixture for a ticker is identical
// across processes and across calls.
var fixtureEnd = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

type listing struct {
	name       string
	basePrice  float64
	baseVolume int64
}

var listings = map[string]listing{
	"AAPL":  {"Apple Inc.", 189.50, 58_000_000},
	"MSFT":  {"Microsoft Corporation", 415.00, 22_000_000},
	"GOOGL": {"Alphabet Inc.", 172.30, 27_000_000},
	"AMZN":  {"Amazon.com, Inc.", 185.90, 40_000_000},
	"TSLA":  {"Tesla, Inc.", 248.40, 95_000_000},
	"NVDA":  {"NVIDIA Corporation", 121.70, 240_000_000},
}

// Provider serves pre-baked price fixtures. It backs the demo mode and the
// fallback path when the live provider is unreachable.
type Provider struct {
	log *slog.Logger

	once     sync.Once
	fixtures map[string][]model.Candle
}

func NewProvider(log *slog.Logger) *Provider {
	return &Provider{log: log}
}

func (p *Provider) Name() string { return "demo" }

// Symbols returns the supported ticker set in no particular order.
func (p *Provider) Symbols() []string {
	out := make([]string, 0, len(listings))
	for sym := range listings {
		out = append(out, sym)
	}
	return out
}

func (p *Provider) Quote(ctx context.Context, symbol string) (*model.Quote, error) {
	candles, err := p.candles(symbol)
	if err != nil {
		return nil, err
	}

	last := candles[len(candles)-1]
	prev := candles[len(candles)-2]

	high, low := last.High, last.Low
	week52High, week52Low := last.High, last.Low
	for _, c := range candles[len(candles)-252:] {
		if c.High > week52High {
			week52High = c.High
		}
		if c.Low < week52Low {
			week52Low = c.Low
		}
	}

	lst := listings[symbol]
	return &model.Quote{
		Symbol:        symbol,
		Name:          lst.name,
		Price:         last.Close,
		ChangePercent: (last.Close - prev.Close) / prev.Close * 100,
		PreviousClose: prev.Close,
		DayHigh:       high,
		DayLow:        low,
		Volume:        last.Volume,
		Week52High:    week52High,
		Week52Low:     week52Low,
		Timestamp:     last.Time,
	}, nil
}

func (p *Provider) History(ctx context.Context, symbol string, rng model.Range) (*model.Series, error) {
	candles, err := p.candles(symbol)
	if err != nil {
		return nil, err
	}

	days := rng.Days()
	if days > len(candles) {
		days = len(candles)
	}

	out := make([]model.Candle, days)
	copy(out, candles[len(candles)-days:])

	return &model.Series{
		Symbol:  symbol,
		Range:   rng,
		Candles: out,
	}, nil
}

func (p *Provider) candles(symbol string) ([]model.Candle, error) {
	p.once.Do(p.build)

	candles, ok := p.fixtures[symbol]
	if !ok {
		return nil, model.ErrUnknownSymbol
	}
	return candles, nil
}

func (p *Provider) build() {
	p.fixtures = make(map[string][]model.Candle, len(listings))
	for sym, lst := range listings {
		p.fixtures[sym] = generate(sym, lst)
	}
	if p.log != nil {
		p.log.Debug("demo fixtures generated", "symbols", len(p.fixtures), "days", fixtureDays)
	}
}

// generate walks a daily OHLCV series backward-anchored at fixtureEnd using a
// seed derived from the symbol, so the series never changes between runs.
func generate(symbol string, lst listing) []model.Candle {
	r := rand.New(rand.NewSource(seed(symbol)))
	candles := make([]model.Candle, fixtureDays)

	price := lst.basePrice
	for i := 0; i < fixtureDays; i++ {
		open := price
		drift := (r.Float64() - 0.5) * 0.04 // bounded daily move, ±2%
		close := open * (1 + drift)

		high := open
		if close > high {
			high = close
		}
		high *= 1 + r.Float64()*0.01

		low := open
		if close < low {
			low = close
		}
		low *= 1 - r.Float64()*0.01

		candles[i] = model.Candle{
			Time:   fixtureEnd.AddDate(0, 0, i-fixtureDays+1),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: int64(float64(lst.baseVolume) * (0.5 + r.Float64())),
		}
		price = close
	}

	return candles
}

func seed(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return int64(h.Sum64())
}

var _ port.MarketDataPort = (*Provider)(nil)
