package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"pulseboard/internal/application/service"
)

// historyDefaultLimit caps the conversation list the way the original
// dashboard showed the last ten exchanges.
const historyDefaultLimit = 10

type ReportHandler struct {
	reports *service.ReportService
	logger  *slog.Logger
}

func NewReportHandler(reports *service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		logger:  logger,
	}
}

type askRequest struct {
	Query string `json:"query"`
}

func (h *ReportHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	conv, err := h.reports.Ask(r.Context(), req.Query)
	if err != nil {
		h.logger.Error("report query failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, conv)
}

func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := historyDefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	convs, err := h.reports.History(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to load conversation history", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"conversations": convs})
}

func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to load conversation stats", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
