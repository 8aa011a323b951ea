package port

import (
	"context"

	"pulseboard/internal/domain/model"
)

// MarketDataPort abstracts a market data provider (live API or fixtures).
type MarketDataPort interface {
	Quote(ctx context.Context, symbol string) (*model.Quote, error)
	History(ctx context.Context, symbol string, rng model.Range) (*model.Series, error)
	Name() string
}
