package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"pulseboard/internal/application/usecase"
)

// StreamHandler pushes the current quote for one symbol over a websocket at
// the configured poll interval, for chart widgets that refresh in place.
type StreamHandler struct {
	useCase      *usecase.QuoteUseCase
	pollInterval time.Duration
	logger       *slog.Logger
	upgrader     websocket.Upgrader
}

func NewStreamHandler(useCase *usecase.QuoteUseCase, pollInterval time.Duration, logger *slog.Logger) *StreamHandler {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	return &StreamHandler{
		useCase:      useCase,
		pollInterval: pollInterval,
		logger:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *StreamHandler) StreamQuotes(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("symbol")))
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	h.logger.Info("quote stream opened", "symbol", symbol, "remote", conn.RemoteAddr().String())

	// Drain client frames so close messages are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	if !h.push(r, conn, symbol) {
		return
	}

	for {
		select {
		case <-done:
			h.logger.Info("quote stream closed by client", "symbol", symbol)
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if !h.push(r, conn, symbol) {
				return
			}
		}
	}
}

func (h *StreamHandler) push(r *http.Request, conn *websocket.Conn, symbol string) bool {
	result, err := h.useCase.GetQuote(r.Context(), symbol)
	if err != nil {
		h.logger.Warn("quote stream fetch failed", "symbol", symbol, "error", err)
		_ = conn.WriteJSON(map[string]string{"error": "unknown symbol"})
		return false
	}

	if err := conn.WriteJSON(result); err != nil {
		h.logger.Info("quote stream write failed, closing", "symbol", symbol, "error", err)
		return false
	}
	return true
}
