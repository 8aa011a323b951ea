package port

import (
	"context"

	"pulseboard/internal/domain/model"
)

// CachePort caches fetched market data. A nil result with a nil error is a
// cache miss.
type CachePort interface {
	SetQuote(ctx context.Context, quote model.Quote) error
	GetQuote(ctx context.Context, symbol string) (*model.Quote, error)
	SetSeries(ctx context.Context, series model.Series) error
	GetSeries(ctx context.Context, symbol string, rng model.Range) (*model.Series, error)
	Ping(ctx context.Context) error
	Close() error
}
