package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulseboard/internal/application/service"
	"pulseboard/internal/domain/model"
)

type failingPingStorage struct {
	memStorage
}

func (failingPingStorage) Ping(ctx context.Context) error {
	return errors.New("connection refused")
}

func TestHealthCheckHealthy(t *testing.T) {
	h := NewHealthHandler(&memStorage{}, newMemCache(), service.NewModeService(testLogger), testLogger)

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"healthy"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"mode":"live"`) {
		t.Errorf("body = %s, want live mode reported", rec.Body.String())
	}
}

func TestHealthCheckDegraded(t *testing.T) {
	h := NewHealthHandler(&failingPingStorage{}, newMemCache(), service.NewModeService(testLogger), testLogger)

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"degraded"`) {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(body, `"database":"unhealthy"`) || !strings.Contains(body, `"redis":"healthy"`) {
		t.Errorf("body = %s, want per-dependency checks", body)
	}
}

func TestHealthCheckReportsForcedDemoMode(t *testing.T) {
	mode := service.NewModeService(testLogger)
	if err := mode.SwitchMode(context.Background(), model.DemoMode); err != nil {
		t.Fatalf("SwitchMode() error = %v", err)
	}
	h := NewHealthHandler(&memStorage{}, newMemCache(), mode, testLogger)

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"mode":"demo"`) {
		t.Errorf("body = %s, want demo mode reported", rec.Body.String())
	}
}
