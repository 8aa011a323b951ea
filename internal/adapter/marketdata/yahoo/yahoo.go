package yahoo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"pulseboard/internal/domain/model"
	"pulseboard/internal/domain/port"
)

// Provider fetches quotes and daily history from Yahoo Finance. Each call is
// bounded by a deadline and retried a configured number of times; the caller
// decides what to substitute when every attempt fails.
type Provider struct {
	timeout time.Duration
	retries int
	log     *slog.Logger
}

func NewProvider(timeout time.Duration, retries int, log *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	return &Provider{timeout: timeout, retries: retries, log: log}
}

func (p *Provider) Name() string { return "yahoo" }

func (p *Provider) Quote(ctx context.Context, symbol string) (*model.Quote, error) {
	q, err := withRetry(ctx, p, "quote", symbol, func() (*finance.Quote, error) {
		return quote.Get(symbol)
	})
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("quote %s: empty response", symbol)
	}

	return &model.Quote{
		Symbol:        q.Symbol,
		Name:          q.ShortName,
		Price:         q.RegularMarketPrice,
		ChangePercent: q.RegularMarketChangePercent,
		PreviousClose: q.RegularMarketPreviousClose,
		DayHigh:       q.RegularMarketDayHigh,
		DayLow:        q.RegularMarketDayLow,
		Volume:        int64(q.RegularMarketVolume),
		Week52High:    q.FiftyTwoWeekHigh,
		Week52Low:     q.FiftyTwoWeekLow,
		Timestamp:     time.Now().UTC(),
	}, nil
}

func (p *Provider) History(ctx context.Context, symbol string, rng model.Range) (*model.Series, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -rng.Days())

	candles, err := withRetry(ctx, p, "history", symbol, func() ([]model.Candle, error) {
		return fetchBars(symbol, start, end)
	})
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("history %s: empty series", symbol)
	}

	return &model.Series{
		Symbol:  symbol,
		Range:   rng,
		Candles: candles,
	}, nil
}

func fetchBars(symbol string, start, end time.Time) ([]model.Candle, error) {
	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	var candles []model.Candle
	for iter.Next() {
		b := iter.Bar()
		candles = append(candles, model.Candle{
			Time:   time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}

	return candles, nil
}

// withRetry runs fn with the provider's deadline, retrying on failure. The
// finance client has no context plumbing, so each attempt runs in its own
// goroutine and is abandoned when the deadline fires.
func withRetry[T any](ctx context.Context, p *Provider, op, symbol string, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= p.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(time.Duration(attempt) * 250 * time.Millisecond):
			}
		}

		result, err := runBounded(ctx, p.timeout, fn)
		if err == nil {
			return result, nil
		}
		lastErr = err
		p.log.Warn("provider call failed",
			"provider", p.Name(), "op", op, "symbol", symbol,
			"attempt", attempt+1, "error", err)

		if ctx.Err() != nil {
			break
		}
	}

	return zero, fmt.Errorf("%s %s after %d attempts: %w", op, symbol, p.retries+1, lastErr)
}

func runBounded[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan outcome, 1)
	go func() {
		v, err := fn()
		ch <- outcome{v, err}
	}()

	select {
	case <-callCtx.Done():
		var zero T
		return zero, callCtx.Err()
	case out := <-ch:
		return out.value, out.err
	}
}

var _ port.MarketDataPort = (*Provider)(nil)
