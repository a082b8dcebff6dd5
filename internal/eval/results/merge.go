package results

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/kobe/internal/eval/baseline"
	"github.com/DjordjeVuckovic/kobe/internal/eval/scorer"
	"github.com/DjordjeVuckovic/kobe/internal/eval/spec"
)

// Merge full outer joins the baseline table with the entity recall scores on
// (lp, system) and drops the excluded rows. A row found on one side only
// keeps that side's cells; the other side's columns stay absent.
func Merge(scores []scorer.Record, base *baseline.Table, exclusions []spec.Exclusion) (*Table, error) {
	t := &Table{}
	t.Columns = append(t.Columns, baseline.ColumnDA)
	if base != nil {
		t.Columns = append(t.Columns, base.Metrics...)
	}
	t.Columns = append(t.Columns, scorer.ColumnEntityRecallQE, scorer.ColumnEntityRecallMetric)

	rows := make(map[Key]*Row)
	var order []Key

	if base != nil {
		for _, br := range base.Rows {
			k := Key{LanguagePair: br.LanguagePair, System: br.System}
			if _, dup := rows[k]; dup {
				return nil, fmt.Errorf("duplicate baseline row for lp %s system %s", k.LanguagePair, k.System)
			}
			values := make(map[string]float64, len(br.Values)+2)
			for col, v := range br.Values {
				values[col] = v
			}
			rows[k] = &Row{Key: k, Values: values}
			order = append(order, k)
		}
	}

	scored := make(map[Key]bool, len(scores))
	for _, s := range scores {
		k := Key{LanguagePair: s.LanguagePair, System: s.System}
		if scored[k] {
			return nil, fmt.Errorf("duplicate score for lp %s system %s", k.LanguagePair, k.System)
		}
		scored[k] = true

		r, ok := rows[k]
		if !ok {
			r = &Row{Key: k, Values: make(map[string]float64, 2)}
			rows[k] = r
			order = append(order, k)
		}
		r.Values[scorer.ColumnEntityRecallQE] = s.EntityRecallQE
		r.Values[scorer.ColumnEntityRecallMetric] = s.EntityRecallMetric
	}

	excluded := make(map[Key]bool, len(exclusions))
	for _, ex := range exclusions {
		excluded[Key{LanguagePair: ex.LanguagePair, System: ex.System}] = true
	}

	for _, k := range order {
		if excluded[k] {
			slog.Debug("excluding row", "lp", k.LanguagePair, "system", k.System)
			continue
		}
		t.Rows = append(t.Rows, *rows[k])
	}
	t.sortRows()

	return t, nil
}
