package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pulseboard/internal/application/service"
	"pulseboard/internal/application/usecase"
	"pulseboard/internal/domain/model"
)

type QuoteHandler struct {
	useCase  *usecase.QuoteUseCase
	insights *service.InsightService
	tickers  []string
	logger   *slog.Logger
}

func NewQuoteHandler(useCase *usecase.QuoteUseCase, insights *service.InsightService, tickers []string, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		useCase:  useCase,
		insights: insights,
		tickers:  tickers,
		logger:   logger,
	}
}

// ListSymbols returns the ticker set the dashboard offers for selection.
func (h *QuoteHandler) ListSymbols(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"symbols": h.tickers})
}

func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	symbol := pathSymbol(r)
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}

	result, err := h.useCase.GetQuote(r.Context(), symbol)
	if err != nil {
		h.writeQuoteErr(w, symbol, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *QuoteHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	symbol := pathSymbol(r)
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}
	rng := model.ParseRange(r.URL.Query().Get("range"))

	result, err := h.useCase.GetHistory(r.Context(), symbol, rng)
	if err != nil {
		h.writeQuoteErr(w, symbol, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetInsight returns templated commentary for the symbol's current quote.
func (h *QuoteHandler) GetInsight(w http.ResponseWriter, r *http.Request) {
	symbol := pathSymbol(r)
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}

	result, err := h.useCase.GetQuote(r.Context(), symbol)
	if err != nil {
		h.writeQuoteErr(w, symbol, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"symbol":    result.Quote.Symbol,
		"insight":   h.insights.QuoteCommentary(result.Quote),
		"source":    result.Source,
		"demo_mode": result.DemoMode,
	})
}

func (h *QuoteHandler) writeQuoteErr(w http.ResponseWriter, symbol string, err error) {
	if errors.Is(err, model.ErrUnknownSymbol) {
		http.Error(w, "unknown symbol", http.StatusNotFound)
		return
	}
	h.logger.Error("quote request failed", "symbol", symbol, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func pathSymbol(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.PathValue("symbol")))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
