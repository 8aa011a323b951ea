package service

import (
	"fmt"

	"pulseboard/internal/domain/model"
)

// Day-change thresholds, in percent, that pick a commentary template.
const (
	strongRallyPct = 3.0
	gainPct        = 0.5
	declinePct     = -0.5
	sharpDropPct   = -3.0
)

// InsightService turns metric values into commentary strings. Every method is
// a pure function of its inputs: fixed inputs always produce the same text.
type InsightService struct{}

func NewInsightService() *InsightService {
	return &InsightService{}
}

// QuoteCommentary selects a template from the quote's day change.
func (s *InsightService) QuoteCommentary(q model.Quote) string {
	name := q.Name
	if name == "" {
		name = q.Symbol
	}

	switch {
	case q.ChangePercent >= strongRallyPct:
		return fmt.Sprintf("%s is rallying strongly, up %.2f%% on the day at $%.2f. Momentum indicators suggest elevated buying interest.",
			name, q.ChangePercent, q.Price)
	case q.ChangePercent >= gainPct:
		return fmt.Sprintf("%s is trading higher, up %.2f%% at $%.2f. Price action remains within the normal daily range.",
			name, q.ChangePercent, q.Price)
	case q.ChangePercent <= sharpDropPct:
		return fmt.Sprintf("%s is under heavy selling pressure, down %.2f%% at $%.2f. The move exceeds typical daily volatility.",
			name, -q.ChangePercent, q.Price)
	case q.ChangePercent <= declinePct:
		return fmt.Sprintf("%s is trading lower, down %.2f%% at $%.2f. The decline is within the normal daily range.",
			name, -q.ChangePercent, q.Price)
	default:
		return fmt.Sprintf("%s is trading flat at $%.2f with no significant directional move today.",
			name, q.Price)
	}
}

// SeriesCommentary summarises a history window from its endpoints.
func (s *InsightService) SeriesCommentary(series model.Series) string {
	if len(series.Candles) < 2 {
		return fmt.Sprintf("Not enough data to summarise %s over %s.", series.Symbol, series.Range)
	}

	first := series.Candles[0].Close
	last := series.Candles[len(series.Candles)-1].Close
	change := (last - first) / first * 100

	switch {
	case change >= strongRallyPct:
		return fmt.Sprintf("%s gained %.2f%% over the %s window, a sustained upward trend.", series.Symbol, change, series.Range)
	case change <= sharpDropPct:
		return fmt.Sprintf("%s lost %.2f%% over the %s window, a sustained downward trend.", series.Symbol, -change, series.Range)
	default:
		return fmt.Sprintf("%s moved %.2f%% over the %s window, trading broadly sideways.", series.Symbol, change, series.Range)
	}
}
