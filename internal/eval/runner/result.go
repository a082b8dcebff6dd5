package runner

import (
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/eval/correlation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/report"
	"github.com/DjordjeVuckovic/kobe/internal/eval/results"
	"github.com/DjordjeVuckovic/kobe/internal/eval/scorer"
	"github.com/google/uuid"
)

type Result struct {
	RunID        uuid.UUID
	Name         string
	StartedAt    time.Time
	Duration     time.Duration
	Scores       []scorer.Record
	Merged       *results.Table
	Correlations *correlation.Table
	Views        []report.View
}

func (r *Result) Report() *report.Report {
	return &report.Report{
		Meta: report.Meta{
			Name:        r.Name,
			RunID:       r.RunID.String(),
			Timestamp:   r.StartedAt,
			Environment: report.NewEnvironmentInfo(),
		},
		Views:        r.Views,
		Correlations: r.Correlations,
		Merged:       r.Merged,
	}
}
