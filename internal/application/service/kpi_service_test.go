package service

import (
	"reflect"
	"testing"
)

func TestRevenueTrend(t *testing.T) {
	s := NewKPIService()
	points := s.RevenueTrend()

	if len(points) != 12 {
		t.Fatalf("trend has %d points, want 12", len(points))
	}

	base := float64(s.KPIs().TotalRevenue)
	for i, p := range points {
		if p.Revenue < base*0.95 || p.Revenue > base*1.05 {
			t.Errorf("month %d revenue %v outside ±5%% of %v", i+1, p.Revenue, base)
		}
		if int(p.Month.Month()) != i+1 {
			t.Errorf("point %d is for month %v", i, p.Month.Month())
		}
	}

	if !reflect.DeepEqual(points, s.RevenueTrend()) {
		t.Error("revenue trend differs between calls")
	}
}

func TestKPIsAreFixed(t *testing.T) {
	s := NewKPIService()
	kpis := s.KPIs()

	if kpis.TotalRevenue != 12_500_000 {
		t.Errorf("total_revenue = %d", kpis.TotalRevenue)
	}
	if kpis.ChurnRate != 2.1 {
		t.Errorf("churn_rate = %v", kpis.ChurnRate)
	}
}
