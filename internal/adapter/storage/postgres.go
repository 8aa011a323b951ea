package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"pulseboard/internal/domain/model"
	"pulseboard/internal/domain/port"
)

type PostgresAdapter struct {
	db *sql.DB
}

func NewPostgresAdapter(connStr string) (*PostgresAdapter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresAdapter{db: db}, nil
}

func (a *PostgresAdapter) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS conversations (
		id SERIAL PRIMARY KEY,
		query TEXT NOT NULL,
		response TEXT NOT NULL,
		response_ms BIGINT NOT NULL,
		satisfaction INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS quote_snapshots (
		id SERIAL PRIMARY KEY,
		symbol VARCHAR(20) NOT NULL,
		range_name VARCHAR(10) NOT NULL,
		source VARCHAR(10) NOT NULL,
		payload JSONB NOT NULL,
		fetched_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_symbol_fetched ON quote_snapshots(symbol, fetched_at);
	`
	_, err := a.db.ExecContext(ctx, query)
	return err
}

func (a *PostgresAdapter) SaveConversation(ctx context.Context, conv *model.Conversation) error {
	row := a.db.QueryRowContext(ctx,
		`INSERT INTO conversations (query, response, response_ms, satisfaction, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		conv.Query, conv.Response, conv.ResponseMs, conv.Satisfaction, conv.CreatedAt,
	)
	if err := row.Scan(&conv.ID); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

func (a *PostgresAdapter) RecentConversations(ctx context.Context, limit int) ([]model.Conversation, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := a.db.QueryContext(ctx,
		`SELECT id, query, response, response_ms, satisfaction, created_at
		 FROM conversations ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	var out []model.Conversation
	for rows.Next() {
		var c model.Conversation
		if err := rows.Scan(&c.ID, &c.Query, &c.Response, &c.ResponseMs, &c.Satisfaction, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (a *PostgresAdapter) ConversationStats(ctx context.Context) (*model.ConversationStats, error) {
	var stats model.ConversationStats
	err := a.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(response_ms), 0),
		        COALESCE(AVG(satisfaction), 0)
		 FROM conversations`,
	).Scan(&stats.TotalQueries, &stats.AvgResponseMs, &stats.AvgSatisfaction)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation stats: %w", err)
	}
	return &stats, nil
}

func (a *PostgresAdapter) SaveSnapshot(ctx context.Context, snap port.Snapshot) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO quote_snapshots (symbol, range_name, source, payload, fetched_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		snap.Symbol, string(snap.Range), string(snap.Source), snap.Payload, snap.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (a *PostgresAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func (a *PostgresAdapter) Close() error {
	return a.db.Close()
}
