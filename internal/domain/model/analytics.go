package model

import "time"

// AnomalyAlert is one detected outlier on the monitored metric.
type AnomalyAlert struct {
	Timestamp   time.Time `json:"timestamp"`
	MetricValue float64   `json:"metric_value"`
	Severity    string    `json:"severity"`
}

// AnomalyPoint is one sample of the monitored metric series. Alert points
// carry Anomaly=true so chart widgets can mark them.
type AnomalyPoint struct {
	Time    time.Time `json:"time"`
	Value   float64   `json:"value"`
	Anomaly bool      `json:"anomaly"`
}

type AnomalySummary struct {
	ModelAccuracy    float64 `json:"model_accuracy"`
	DetectionLatency string  `json:"detection_latency"`
	Detected         int     `json:"detected"`
	Window           string  `json:"window"`
}

// Pipeline is one ETL job of the processing fleet.
type Pipeline struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Records  int64  `json:"records"`
	Duration int    `json:"duration_min"`
}

const (
	PipelineSuccess = "Success"
	PipelineFailed  = "Failed"
	PipelineRunning = "Running"
)

type PipelineSummary struct {
	SuccessRate  float64 `json:"success_rate"`
	TotalRecords int64   `json:"total_records"`
	Pipelines    int     `json:"pipelines"`
	HoursSaved   string  `json:"hours_saved"`
}

// KPISet is the executive metric sheet.
type KPISet struct {
	TotalRevenue            int64   `json:"total_revenue"`
	MonthlyGrowth           float64 `json:"monthly_growth"`
	CustomerAcquisitionCost int64   `json:"customer_acquisition_cost"`
	CustomerLifetimeValue   int64   `json:"customer_lifetime_value"`
	ChurnRate               float64 `json:"churn_rate"`
	EmployeeSatisfaction    int     `json:"employee_satisfaction"`
	OperationalEfficiency   float64 `json:"operational_efficiency"`
	CostSavings             int64   `json:"cost_savings"`
}

type RevenuePoint struct {
	Month   time.Time `json:"month"`
	Revenue float64   `json:"revenue"`
}
