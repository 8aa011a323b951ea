package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"pulseboard/internal/domain/model"
	"pulseboard/internal/domain/port"
)

// ReportService answers natural-language questions about the executive
// metrics. Answers are canned templates routed on keywords; the simulated
// response time and satisfaction score are recorded with each exchange.
type ReportService struct {
	storage port.StoragePort
	kpis    *KPIService
	logger  *slog.Logger

	mu  sync.Mutex // guards rng; handlers call Ask concurrently
	rng *rand.Rand
}

func NewReportService(storage port.StoragePort, kpis *KPIService, logger *slog.Logger, seed int64) *ReportService {
	return &ReportService{
		storage: storage,
		kpis:    kpis,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (s *ReportService) Ask(ctx context.Context, query string) (*model.Conversation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}

	s.mu.Lock()
	responseMs := 500 + s.rng.Int63n(1500)
	satisfaction := 4 + s.rng.Intn(2)
	s.mu.Unlock()

	conv := &model.Conversation{
		Query:        query,
		Response:     s.answer(query),
		ResponseMs:   responseMs,
		Satisfaction: satisfaction,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.storage.SaveConversation(ctx, conv); err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}

	s.logger.Info("report query answered", "response_ms", conv.ResponseMs)
	return conv, nil
}

func (s *ReportService) History(ctx context.Context, limit int) ([]model.Conversation, error) {
	return s.storage.RecentConversations(ctx, limit)
}

func (s *ReportService) Stats(ctx context.Context) (*model.ConversationStats, error) {
	return s.storage.ConversationStats(ctx)
}

// answer routes on keywords. It is deterministic: a fixed query always yields
// the same text.
func (s *ReportService) answer(query string) string {
	kpis := s.kpis.KPIs()
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "churn"):
		return fmt.Sprintf("Current churn rate is %.1f%%, which is 0.8%% better than last quarter. The main contributing factors are improved customer support and product updates.",
			kpis.ChurnRate)
	case strings.Contains(q, "revenue"):
		return fmt.Sprintf("Total revenue is $%s with %.1f%% monthly growth. Revenue has shown consistent upward trends across all quarters.",
			groupDigits(kpis.TotalRevenue), kpis.MonthlyGrowth)
	case strings.Contains(q, "cost"):
		return fmt.Sprintf("Automation has saved $%s annually by eliminating 2,000+ manual hours of pipeline work.",
			groupDigits(kpis.CostSavings))
	default:
		return "Based on the current data, all key metrics are performing within expected ranges. Ask about churn, revenue, or cost for a detailed breakdown."
	}
}

// groupDigits renders n with thousands separators ("12,500,000").
func groupDigits(n int64) string {
	digits := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
