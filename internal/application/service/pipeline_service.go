package service

import "pulseboard/internal/domain/model"

// pipelineRegistry is the fixed ETL fleet behind the pipelines view.
var pipelineRegistry = []model.Pipeline{
	{Name: "Customer Data Pipeline", Status: model.PipelineSuccess, Records: 461_782, Duration: 107},
	{Name: "Sales Analytics Pipeline", Status: model.PipelineFailed, Records: 0, Duration: 179},
	{Name: "Marketing Pipeline", Status: model.PipelineSuccess, Records: 79_369, Duration: 161},
	{Name: "Financial Reporting Pipeline", Status: model.PipelineSuccess, Records: 321_699, Duration: 25},
	{Name: "Product Analytics Pipeline", Status: model.PipelineSuccess, Records: 171_616, Duration: 108},
}

type PipelineService struct{}

func NewPipelineService() *PipelineService {
	return &PipelineService{}
}

func (s *PipelineService) Pipelines() []model.Pipeline {
	out := make([]model.Pipeline, len(pipelineRegistry))
	copy(out, pipelineRegistry)
	return out
}

// Summary derives the fleet metrics: success rate over all pipelines and
// records processed by the successful ones.
func (s *PipelineService) Summary() model.PipelineSummary {
	var successful int
	var records int64
	for _, p := range pipelineRegistry {
		if p.Status == model.PipelineSuccess {
			successful++
			records += p.Records
		}
	}

	return model.PipelineSummary{
		SuccessRate:  float64(successful) / float64(len(pipelineRegistry)) * 100,
		TotalRecords: records,
		Pipelines:    len(pipelineRegistry),
		HoursSaved:   "2,000+",
	}
}
