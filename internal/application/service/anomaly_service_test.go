package service

import (
	"reflect"
	"testing"
	"time"
)

func TestAnomalySeriesShape(t *testing.T) {
	s := NewAnomalyService()
	points := s.Series()

	if len(points) != anomalySeriesDays {
		t.Fatalf("series has %d points, want %d", len(points), anomalySeriesDays)
	}
	if !points[0].Time.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("series starts at %v", points[0].Time)
	}

	var flagged int
	for _, p := range points {
		if p.Anomaly {
			flagged++
		}
	}
	if flagged != len(anomalyAlerts) {
		t.Errorf("series marks %d anomalies, want %d", flagged, len(anomalyAlerts))
	}
}

func TestAnomalySeriesSplicesAlerts(t *testing.T) {
	s := NewAnomalyService()
	points := s.Series()

	byDate := make(map[time.Time]float64)
	for _, p := range points {
		if p.Anomaly {
			byDate[p.Time] = p.Value
		}
	}

	for _, alert := range anomalyAlerts {
		got, ok := byDate[alert.Timestamp]
		if !ok {
			t.Errorf("alert on %v missing from series", alert.Timestamp)
			continue
		}
		if got != alert.MetricValue {
			t.Errorf("alert on %v has value %v, want %v", alert.Timestamp, got, alert.MetricValue)
		}
	}
}

func TestAnomalySeriesIsDeterministic(t *testing.T) {
	if !reflect.DeepEqual(NewAnomalyService().Series(), NewAnomalyService().Series()) {
		t.Error("series differs between service instances")
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	s := NewAnomalyService()
	recent := s.Recent(3)

	if len(recent) != 3 {
		t.Fatalf("Recent(3) returned %d alerts", len(recent))
	}
	if !recent[0].Timestamp.After(recent[1].Timestamp) || !recent[1].Timestamp.After(recent[2].Timestamp) {
		t.Error("Recent(3) is not ordered newest first")
	}
	if recent[0].MetricValue != 168.37 {
		t.Errorf("newest alert value = %v, want 168.37", recent[0].MetricValue)
	}
}

func TestSummary(t *testing.T) {
	got := NewAnomalyService().Summary()

	if got.ModelAccuracy != 92 {
		t.Errorf("model_accuracy = %v, want 92", got.ModelAccuracy)
	}
	if got.Detected != len(anomalyAlerts) {
		t.Errorf("detected = %d, want %d", got.Detected, len(anomalyAlerts))
	}
}
