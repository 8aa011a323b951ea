package service

import (
	"testing"

	"pulseboard/internal/domain/model"
)

func TestPipelineSummary(t *testing.T) {
	s := NewPipelineService()
	got := s.Summary()

	if got.SuccessRate != 80 {
		t.Errorf("success_rate = %v, want 80", got.SuccessRate)
	}
	if want := int64(461_782 + 79_369 + 321_699 + 171_616); got.TotalRecords != want {
		t.Errorf("total_records = %d, want %d", got.TotalRecords, want)
	}
	if got.Pipelines != 5 {
		t.Errorf("pipelines = %d, want 5", got.Pipelines)
	}
}

func TestPipelinesReturnsCopy(t *testing.T) {
	s := NewPipelineService()

	pipelines := s.Pipelines()
	pipelines[0].Status = model.PipelineFailed

	if s.Pipelines()[0].Status != model.PipelineSuccess {
		t.Error("mutating the returned slice changed the registry")
	}
}
