package service

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"pulseboard/internal/domain/model"
)

const (
	anomalySeriesSeed = 20240601
	anomalySeriesDays = 365
)

// anomalyAlerts is the fixed alert table on the database response-time
// metric, in chronological order.
var anomalyAlerts = []model.AnomalyAlert{
	{Timestamp: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), MetricValue: 145.17, Severity: "High"},
	{Timestamp: time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC), MetricValue: 67.45, Severity: "Medium"},
	{Timestamp: time.Date(2024, 8, 4, 0, 0, 0, 0, time.UTC), MetricValue: 134.74, Severity: "Medium"},
	{Timestamp: time.Date(2024, 10, 6, 0, 0, 0, 0, time.UTC), MetricValue: 56.21, Severity: "High"},
	{Timestamp: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), MetricValue: 168.37, Severity: "High"},
}

// AnomalyService serves the anomaly-detection feed: a fixed alert table plus
// a seeded seasonal series with the alert values spliced in.
type AnomalyService struct {
	once   sync.Once
	series []model.AnomalyPoint
}

func NewAnomalyService() *AnomalyService {
	return &AnomalyService{}
}

func (s *AnomalyService) Alerts() []model.AnomalyAlert {
	out := make([]model.AnomalyAlert, len(anomalyAlerts))
	copy(out, anomalyAlerts)
	return out
}

// Recent returns the newest n alerts, newest first.
func (s *AnomalyService) Recent(n int) []model.AnomalyAlert {
	if n <= 0 || n > len(anomalyAlerts) {
		n = len(anomalyAlerts)
	}
	out := make([]model.AnomalyAlert, 0, n)
	for i := len(anomalyAlerts) - 1; i >= len(anomalyAlerts)-n; i-- {
		out = append(out, anomalyAlerts[i])
	}
	return out
}

func (s *AnomalyService) Summary() model.AnomalySummary {
	return model.AnomalySummary{
		ModelAccuracy:    92,
		DetectionLatency: "< 100ms",
		Detected:         len(anomalyAlerts),
		Window:           "30d",
	}
}

// Series returns one year of daily samples: a seasonal sinusoid with seeded
// noise, with the alert points overriding their dates.
func (s *AnomalyService) Series() []model.AnomalyPoint {
	s.once.Do(s.build)

	out := make([]model.AnomalyPoint, len(s.series))
	copy(out, s.series)
	return out
}

func (s *AnomalyService) build() {
	r := rand.New(rand.NewSource(anomalySeriesSeed))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	alertByDate := make(map[time.Time]model.AnomalyAlert, len(anomalyAlerts))
	for _, a := range anomalyAlerts {
		alertByDate[a.Timestamp] = a
	}

	s.series = make([]model.AnomalyPoint, anomalySeriesDays)
	for i := 0; i < anomalySeriesDays; i++ {
		day := start.AddDate(0, 0, i)
		value := 100 + 20*math.Sin(2*math.Pi*float64(i)/365.25) + r.NormFloat64()*5

		point := model.AnomalyPoint{Time: day, Value: value}
		if alert, ok := alertByDate[day]; ok {
			point.Value = alert.MetricValue
			point.Anomaly = true
		}
		s.series[i] = point
	}
}
