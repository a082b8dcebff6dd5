package storage

import (
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/eval/report"
	"github.com/DjordjeVuckovic/kobe/internal/eval/runner"
	"github.com/DjordjeVuckovic/kobe/internal/eval/scorer"
	"github.com/google/uuid"
)

// Run is one persisted evaluation: the raw entity recall scores plus the
// report built from them.
type Run struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Scores    []scorer.Record `json:"scores"`
	Report    *report.Report  `json:"report"`
}

func NewRun(res *runner.Result) *Run {
	return &Run{
		ID:        res.RunID,
		Name:      res.Name,
		CreatedAt: res.StartedAt,
		Scores:    res.Scores,
		Report:    res.Report(),
	}
}
