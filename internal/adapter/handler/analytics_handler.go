package handler

import (
	"net/http"

	"pulseboard/internal/application/service"
)

// AnalyticsHandler serves the simulated analytics surfaces: anomaly feed,
// ETL pipeline telemetry, and the executive KPI sheet.
type AnalyticsHandler struct {
	anomalies *service.AnomalyService
	pipelines *service.PipelineService
	kpis      *service.KPIService
}

func NewAnalyticsHandler(anomalies *service.AnomalyService, pipelines *service.PipelineService, kpis *service.KPIService) *AnalyticsHandler {
	return &AnalyticsHandler{
		anomalies: anomalies,
		pipelines: pipelines,
		kpis:      kpis,
	}
}

func (h *AnalyticsHandler) GetAnomalies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": h.anomalies.Summary(),
		"alerts":  h.anomalies.Recent(3),
	})
}

func (h *AnalyticsHandler) GetAnomalySeries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"metric": "database_response_time_ms",
		"points": h.anomalies.Series(),
	})
}

func (h *AnalyticsHandler) GetPipelines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"pipelines": h.pipelines.Pipelines(),
	})
}

func (h *AnalyticsHandler) GetPipelineSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pipelines.Summary())
}

func (h *AnalyticsHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.kpis.KPIs())
}

func (h *AnalyticsHandler) GetRevenueTrend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"points": h.kpis.RevenueTrend(),
	})
}
