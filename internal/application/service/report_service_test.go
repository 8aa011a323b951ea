package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"pulseboard/internal/domain/model"
	"pulseboard/internal/domain/port"
)

type memStorage struct {
	mu            sync.Mutex
	conversations []model.Conversation
}

func (s *memStorage) SaveConversation(ctx context.Context, conv *model.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv.ID = int64(len(s.conversations) + 1)
	s.conversations = append(s.conversations, *conv)
	return nil
}

func (s *memStorage) RecentConversations(ctx context.Context, limit int) ([]model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Conversation, 0, limit)
	for i := len(s.conversations) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.conversations[i])
	}
	return out, nil
}

func (s *memStorage) ConversationStats(ctx context.Context) (*model.ConversationStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &model.ConversationStats{TotalQueries: int64(len(s.conversations))}
	if len(s.conversations) == 0 {
		return stats, nil
	}
	var ms, sat float64
	for _, c := range s.conversations {
		ms += float64(c.ResponseMs)
		sat += float64(c.Satisfaction)
	}
	stats.AvgResponseMs = ms / float64(len(s.conversations))
	stats.AvgSatisfaction = sat / float64(len(s.conversations))
	return stats, nil
}

func (s *memStorage) SaveSnapshot(ctx context.Context, snap port.Snapshot) error { return nil }
func (s *memStorage) Ping(ctx context.Context) error                             { return nil }
func (s *memStorage) Close() error                                               { return nil }

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

var testLogger = slog.New(slog.NewTextHandler(nullWriter{}, nil))

func newReportService(store *memStorage) *ReportService {
	return NewReportService(store, NewKPIService(), testLogger, 1)
}

func TestAskRoutesOnKeywords(t *testing.T) {
	s := newReportService(&memStorage{})
	ctx := context.Background()

	tests := []struct {
		query string
		want  string
	}{
		{"What's our churn rate?", "churn rate is 2.1%"},
		{"Show me revenue trends", "Total revenue is $12,500,000"},
		{"How much cost did we save?", "saved $2,100,000 annually"},
		{"Tell me something", "within expected ranges"},
	}

	for _, tt := range tests {
		conv, err := s.Ask(ctx, tt.query)
		if err != nil {
			t.Fatalf("Ask(%q) error = %v", tt.query, err)
		}
		if !strings.Contains(conv.Response, tt.want) {
			t.Errorf("Ask(%q) = %q, want it to contain %q", tt.query, conv.Response, tt.want)
		}
	}
}

func TestAskResponseTextIsDeterministic(t *testing.T) {
	s := newReportService(&memStorage{})
	ctx := context.Background()

	first, _ := s.Ask(ctx, "what is the churn?")
	second, _ := s.Ask(ctx, "what is the churn?")
	if first.Response != second.Response {
		t.Errorf("same query produced different responses: %q vs %q", first.Response, second.Response)
	}
}

func TestAskRecordsSimulatedTelemetry(t *testing.T) {
	store := &memStorage{}
	s := newReportService(store)

	conv, err := s.Ask(context.Background(), "revenue?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if conv.ResponseMs < 500 || conv.ResponseMs >= 2000 {
		t.Errorf("response_ms = %d, want [500, 2000)", conv.ResponseMs)
	}
	if conv.Satisfaction != 4 && conv.Satisfaction != 5 {
		t.Errorf("satisfaction = %d, want 4 or 5", conv.Satisfaction)
	}
	if len(store.conversations) != 1 {
		t.Errorf("stored %d conversations, want 1", len(store.conversations))
	}
	if conv.ID == 0 {
		t.Error("conversation ID not assigned by storage")
	}
}

func TestAskConcurrent(t *testing.T) {
	store := &memStorage{}
	s := newReportService(store)
	ctx := context.Background()

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := s.Ask(ctx, "revenue"); err != nil {
					t.Errorf("Ask() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalQueries != workers*perWorker {
		t.Errorf("total_queries = %d, want %d", stats.TotalQueries, workers*perWorker)
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12500000, "12,500,000"},
		{2100000, "2,100,000"},
		{-54321, "-54,321"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.n); got != tt.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestAskRejectsEmptyQuery(t *testing.T) {
	s := newReportService(&memStorage{})
	if _, err := s.Ask(context.Background(), "   "); err == nil {
		t.Error("Ask with blank query did not fail")
	}
}

func TestHistoryAndStats(t *testing.T) {
	store := &memStorage{}
	s := newReportService(store)
	ctx := context.Background()

	queries := []string{"churn", "revenue", "cost"}
	for _, q := range queries {
		if _, err := s.Ask(ctx, q); err != nil {
			t.Fatalf("Ask(%q) error = %v", q, err)
		}
	}

	history, err := s.History(ctx, 2)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("History(2) returned %d items", len(history))
	}
	if history[0].Query != "cost" {
		t.Errorf("newest conversation = %q, want %q", history[0].Query, "cost")
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalQueries != 3 {
		t.Errorf("total_queries = %d, want 3", stats.TotalQueries)
	}
	if stats.AvgSatisfaction < 4 || stats.AvgSatisfaction > 5 {
		t.Errorf("avg_satisfaction = %v, want within [4, 5]", stats.AvgSatisfaction)
	}
}
