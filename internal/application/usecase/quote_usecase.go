package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"pulseboard/internal/application/service"
	"pulseboard/internal/domain/model"
	"pulseboard/internal/domain/port"
)

// QuoteUseCase orchestrates market data retrieval: cache first, then the
// live provider, and on any live failure the demo fixture is substituted so
// the dashboard always renders. The only signal of a failure the client sees
// is the demo source label.
type QuoteUseCase struct {
	live    port.MarketDataPort
	demo    port.MarketDataPort
	cache   port.CachePort
	storage port.StoragePort
	mode    *service.ModeService
	logger  *slog.Logger
}

func NewQuoteUseCase(
	live, demo port.MarketDataPort,
	cache port.CachePort,
	storage port.StoragePort,
	mode *service.ModeService,
	logger *slog.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{
		live:    live,
		demo:    demo,
		cache:   cache,
		storage: storage,
		mode:    mode,
		logger:  logger,
	}
}

func (uc *QuoteUseCase) GetQuote(ctx context.Context, symbol string) (*model.QuoteResult, error) {
	if uc.mode.GetCurrentMode() == model.DemoMode {
		return uc.demoQuote(ctx, symbol)
	}

	if cached, err := uc.cache.GetQuote(ctx, symbol); err != nil {
		uc.logger.Warn("quote cache read failed", "symbol", symbol, "error", err)
	} else if cached != nil {
		return &model.QuoteResult{Quote: *cached, Source: model.SourceCache}, nil
	}

	quote, err := uc.live.Quote(ctx, symbol)
	if err != nil {
		uc.logger.Warn("live quote failed, substituting fixture",
			"symbol", symbol, "provider", uc.live.Name(), "error", err)
		return uc.demoQuote(ctx, symbol)
	}

	if err := uc.cache.SetQuote(ctx, *quote); err != nil {
		uc.logger.Warn("quote cache write failed", "symbol", symbol, "error", err)
	}
	uc.audit(ctx, symbol, "", model.SourceLive, quote)

	return &model.QuoteResult{Quote: *quote, Source: model.SourceLive}, nil
}

func (uc *QuoteUseCase) GetHistory(ctx context.Context, symbol string, rng model.Range) (*model.SeriesResult, error) {
	if uc.mode.GetCurrentMode() == model.DemoMode {
		return uc.demoHistory(ctx, symbol, rng)
	}

	if cached, err := uc.cache.GetSeries(ctx, symbol, rng); err != nil {
		uc.logger.Warn("series cache read failed", "symbol", symbol, "error", err)
	} else if cached != nil {
		return &model.SeriesResult{Series: *cached, Source: model.SourceCache}, nil
	}

	series, err := uc.live.History(ctx, symbol, rng)
	if err != nil {
		uc.logger.Warn("live history failed, substituting fixture",
			"symbol", symbol, "range", rng, "provider", uc.live.Name(), "error", err)
		return uc.demoHistory(ctx, symbol, rng)
	}

	if err := uc.cache.SetSeries(ctx, *series); err != nil {
		uc.logger.Warn("series cache write failed", "symbol", symbol, "error", err)
	}
	uc.audit(ctx, symbol, rng, model.SourceLive, series)

	return &model.SeriesResult{Series: *series, Source: model.SourceLive}, nil
}

func (uc *QuoteUseCase) demoQuote(ctx context.Context, symbol string) (*model.QuoteResult, error) {
	quote, err := uc.demo.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	uc.audit(ctx, symbol, "", model.SourceDemo, quote)
	return &model.QuoteResult{Quote: *quote, Source: model.SourceDemo, DemoMode: true}, nil
}

func (uc *QuoteUseCase) demoHistory(ctx context.Context, symbol string, rng model.Range) (*model.SeriesResult, error) {
	series, err := uc.demo.History(ctx, symbol, rng)
	if err != nil {
		return nil, err
	}
	uc.audit(ctx, symbol, rng, model.SourceDemo, series)
	return &model.SeriesResult{Series: *series, Source: model.SourceDemo, DemoMode: true}, nil
}

// audit records every non-cache fetch. Audit failures never fail the request.
func (uc *QuoteUseCase) audit(ctx context.Context, symbol string, rng model.Range, source model.Source, payload any) {
	if uc.storage == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		uc.logger.Warn("snapshot marshal failed", "symbol", symbol, "error", err)
		return
	}

	snap := port.Snapshot{
		Symbol:    symbol,
		Range:     rng,
		Source:    source,
		Payload:   data,
		FetchedAt: time.Now().UTC(),
	}
	if err := uc.storage.SaveSnapshot(ctx, snap); err != nil && !errors.Is(err, context.Canceled) {
		uc.logger.Warn("snapshot write failed", "symbol", symbol, "error", err)
	}
}
