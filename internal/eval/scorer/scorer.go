package scorer

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/DjordjeVuckovic/kobe/internal/eval/annotation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/metrics"
)

const (
	ColumnEntityRecallQE     = "entity_recall_qe"
	ColumnEntityRecallMetric = "entity_recall_metric"
)

// Record holds both entity recall scores of one system on one language pair.
type Record struct {
	LanguagePair       string  `json:"lp"`
	System             string  `json:"system"`
	EntityRecallQE     float64 `json:"entity_recall_qe"`
	EntityRecallMetric float64 `json:"entity_recall_metric"`
}

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate scores every system of every language pair in coll. The
// reference-free score matches the system against the source annotations,
// the reference-based score matches it against the human reference.
func (c *Calculator) Calculate(coll *annotation.Collection) ([]Record, error) {
	var records []Record

	for _, lp := range coll.LanguagePairs() {
		slog.Info("calc scores", "lp", lp)

		src, ok := coll.Get(lp, annotation.RoleSource)
		if !ok {
			return nil, fmt.Errorf("lp %s: missing source annotations", lp)
		}
		ref, ok := coll.Get(lp, annotation.RoleReference)
		if !ok {
			return nil, fmt.Errorf("lp %s: missing reference annotations", lp)
		}

		systems := coll.Systems(lp)
		sort.Strings(systems)

		for _, sys := range systems {
			cnd, _ := coll.Get(lp, sys)

			qe, err := score(src, cnd)
			if err != nil {
				return nil, fmt.Errorf("lp %s system %s: source vs system: %w", lp, sys, err)
			}
			metric, err := score(ref, cnd)
			if err != nil {
				return nil, fmt.Errorf("lp %s system %s: reference vs system: %w", lp, sys, err)
			}

			records = append(records, Record{
				LanguagePair:       lp,
				System:             sys,
				EntityRecallQE:     qe,
				EntityRecallMetric: metric,
			})
		}
	}

	return records, nil
}

func score(ref, cnd *annotation.Document) (float64, error) {
	counters, err := metrics.MatchIDs(ref.AnnotatedSentences, cnd.AnnotatedSentences)
	if err != nil {
		return 0, err
	}
	return metrics.EntityRecall(counters)
}
