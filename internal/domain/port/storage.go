package port

import (
	"context"
	"time"

	"pulseboard/internal/domain/model"
)

// Snapshot is an audit record of one non-cache fetch.
type Snapshot struct {
	Symbol    string
	Range     model.Range
	Source    model.Source
	Payload   []byte
	FetchedAt time.Time
}

type StoragePort interface {
	SaveConversation(ctx context.Context, conv *model.Conversation) error
	RecentConversations(ctx context.Context, limit int) ([]model.Conversation, error)
	ConversationStats(ctx context.Context) (*model.ConversationStats, error)
	SaveSnapshot(ctx context.Context, snap Snapshot) error
	Ping(ctx context.Context) error
	Close() error
}
