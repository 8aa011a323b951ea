package service

import (
	"context"
	"log/slog"
	"sync"

	"pulseboard/internal/domain/model"
)

// ModeService holds the process-wide data mode. In live mode requests go to
// the provider with fixture fallback; forcing demo mode serves fixtures
// unconditionally, which is handy when the upstream API is rate limiting.
type ModeService struct {
	mu     sync.RWMutex
	active model.DataMode
	logger *slog.Logger
}

func NewModeService(logger *slog.Logger) *ModeService {
	return &ModeService{
		active: model.LiveMode,
		logger: logger,
	}
}

// SwitchMode is idempotent; switching to the active mode is a no-op.
func (s *ModeService) SwitchMode(ctx context.Context, mode model.DataMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == mode {
		return nil
	}

	s.logger.Info("data mode switched", "from", s.active, "to", mode)
	s.active = mode
	return nil
}

func (s *ModeService) GetCurrentMode() model.DataMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}
