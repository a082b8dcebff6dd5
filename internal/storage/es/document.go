package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/eval/results"
	"github.com/DjordjeVuckovic/kobe/internal/storage"
)

const (
	KindRow         = "row"
	KindCorrelation = "correlation"
)

// Document is one indexed fact of a run: either a merged (lp, system) row or
// a single correlation cell.
type Document struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	RunID     string             `json:"run_id"`
	RunName   string             `json:"run_name"`
	CreatedAt time.Time          `json:"created_at"`
	Lp        string             `json:"lp"`
	System    string             `json:"system,omitempty"`
	Metric    string             `json:"metric,omitempty"`
	Value     *float64           `json:"value,omitempty"`
	Values    map[string]float64 `json:"values,omitempty"`
	IndexedAt time.Time          `json:"indexed_at"`
}

func runDocuments(run *storage.Run, now time.Time) []Document {
	if run.Report == nil {
		return nil
	}

	base := Document{
		RunID:     run.ID.String(),
		RunName:   run.Name,
		CreatedAt: run.CreatedAt,
		IndexedAt: now,
	}

	var docs []Document
	if run.Report.Merged != nil {
		for _, r := range run.Report.Merged.Rows {
			docs = append(docs, rowDocument(base, r))
		}
	}

	if t := run.Report.Correlations; t != nil {
		for _, metric := range t.Metrics {
			for _, lp := range t.LanguagePairs {
				v, ok := t.Get(metric, lp)
				if !ok {
					continue
				}
				d := base
				d.ID = fmt.Sprintf("%s/%s/%s/%s", base.RunID, KindCorrelation, metric, lp)
				d.Kind = KindCorrelation
				d.Lp = lp
				d.Metric = metric
				d.Value = &v
				docs = append(docs, d)
			}
		}
	}

	return docs
}

func rowDocument(base Document, r results.Row) Document {
	d := base
	d.ID = fmt.Sprintf("%s/%s/%s/%s", base.RunID, KindRow, r.LanguagePair, r.System)
	d.Kind = KindRow
	d.Lp = r.LanguagePair
	d.System = r.System
	d.Values = make(map[string]float64, len(r.Values))
	for k, v := range r.Values {
		d.Values[k] = v
	}
	return d
}
