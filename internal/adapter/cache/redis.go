package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pulseboard/internal/domain/model"
)

// RedisAdapter caches fetched market data. Quotes are short-lived; daily
// history moves slowly and keeps a longer TTL.
type RedisAdapter struct {
	client    *redis.Client
	quoteTTL  time.Duration
	seriesTTL time.Duration
}

func NewRedisAdapter(addr, password string, db int, quoteTTL, seriesTTL time.Duration) (*RedisAdapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisAdapter{
		client:    client,
		quoteTTL:  quoteTTL,
		seriesTTL: seriesTTL,
	}, nil
}

func (a *RedisAdapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}

func (a *RedisAdapter) SetQuote(ctx context.Context, quote model.Quote) error {
	key := quoteKey(quote.Symbol)
	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	if err := a.client.Set(ctx, key, data, a.quoteTTL).Err(); err != nil {
		return fmt.Errorf("failed to set quote in redis: %w", err)
	}
	return nil
}

func (a *RedisAdapter) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	data, err := a.client.Get(ctx, quoteKey(symbol)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quote from redis: %w", err)
	}

	var quote model.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote: %w", err)
	}
	return &quote, nil
}

func (a *RedisAdapter) SetSeries(ctx context.Context, series model.Series) error {
	key := seriesKey(series.Symbol, series.Range)
	data, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to marshal series: %w", err)
	}

	if err := a.client.Set(ctx, key, data, a.seriesTTL).Err(); err != nil {
		return fmt.Errorf("failed to set series in redis: %w", err)
	}
	return nil
}

func (a *RedisAdapter) GetSeries(ctx context.Context, symbol string, rng model.Range) (*model.Series, error) {
	data, err := a.client.Get(ctx, seriesKey(symbol, rng)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get series from redis: %w", err)
	}

	var series model.Series
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("failed to unmarshal series: %w", err)
	}
	return &series, nil
}

func (a *RedisAdapter) Close() error {
	return a.client.Close()
}

func quoteKey(symbol string) string {
	return fmt.Sprintf("quote:%s", symbol)
}

func seriesKey(symbol string, rng model.Range) string {
	return fmt.Sprintf("series:%s:%s", symbol, rng)
}
