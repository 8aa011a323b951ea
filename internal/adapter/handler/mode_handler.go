package handler

import (
	"log/slog"
	"net/http"

	"pulseboard/internal/application/service"
	"pulseboard/internal/domain/model"
)

type ModeHandler struct {
	modeService *service.ModeService
	log         *slog.Logger
}

func NewModeHandler(ms *service.ModeService, log *slog.Logger) *ModeHandler {
	return &ModeHandler{
		modeService: ms,
		log:         log,
	}
}

func (h *ModeHandler) SwitchToDemo(w http.ResponseWriter, r *http.Request) {
	h.log.Info("received request to switch to demo mode")
	h.switchMode(w, r, model.DemoMode)
}

func (h *ModeHandler) SwitchToLive(w http.ResponseWriter, r *http.Request) {
	h.log.Info("received request to switch to live mode")
	h.switchMode(w, r, model.LiveMode)
}

func (h *ModeHandler) GetMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"mode": h.modeService.GetCurrentMode().String(),
	})
}

func (h *ModeHandler) switchMode(w http.ResponseWriter, r *http.Request, mode model.DataMode) {
	currentMode := h.modeService.GetCurrentMode()

	if currentMode == mode {
		h.log.Info("already in requested mode", "mode", mode)
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "already in requested mode",
			"mode":    mode.String(),
		})
		return
	}

	if err := h.modeService.SwitchMode(r.Context(), mode); err != nil {
		h.log.Error("switch mode failed", "from", currentMode, "to", mode, "error", err)
		http.Error(w, "failed to switch mode", http.StatusInternalServerError)
		return
	}

	h.log.Info("mode switched successfully", "new_mode", mode)
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"mode":   mode.String(),
	})
}
