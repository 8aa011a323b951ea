package service

import (
	"math/rand"
	"time"

	"pulseboard/internal/domain/model"
)

// revenueTrendSeed keeps the monthly jitter identical across processes.
const revenueTrendSeed = 20240101

// executiveKPIs is the fixed metric sheet behind the dashboard and the
// reporting assistant.
var executiveKPIs = model.KPISet{
	TotalRevenue:            12_500_000,
	MonthlyGrowth:           8.5,
	CustomerAcquisitionCost: 125,
	CustomerLifetimeValue:   2800,
	ChurnRate:               2.1,
	EmployeeSatisfaction:    87,
	OperationalEfficiency:   94.2,
	CostSavings:             2_100_000,
}

type KPIService struct{}

func NewKPIService() *KPIService {
	return &KPIService{}
}

func (s *KPIService) KPIs() model.KPISet {
	return executiveKPIs
}

// RevenueTrend returns twelve monthly points jittered ±5% around total
// revenue, from a fixed seed so the chart is stable across restarts.
func (s *KPIService) RevenueTrend() []model.RevenuePoint {
	r := rand.New(rand.NewSource(revenueTrendSeed))
	base := float64(executiveKPIs.TotalRevenue)

	points := make([]model.RevenuePoint, 12)
	for i := range points {
		points[i] = model.RevenuePoint{
			Month:   time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Revenue: base * (1 + (r.Float64()-0.5)*0.10),
		}
	}
	return points
}
