package correlation

import (
	"math"

	"github.com/DjordjeVuckovic/kobe/internal/eval/baseline"
	"github.com/DjordjeVuckovic/kobe/internal/eval/results"
	"github.com/DjordjeVuckovic/kobe/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

const (
	MinSamples = 2
	Decimals   = 3
)

// Table holds one row per metric and one column per language pair. A cell is
// absent when the correlation is undefined for that pair.
type Table struct {
	Metrics       []string                      `json:"metrics"`
	LanguagePairs []string                      `json:"language_pairs"`
	Cells         map[string]map[string]float64 `json:"cells"`
}

func (t *Table) Get(metric, langPair string) (float64, bool) {
	v, ok := t.Cells[metric][langPair]
	return v, ok
}

func (t *Table) HasMetric(metric string) bool {
	for _, m := range t.Metrics {
		if m == metric {
			return true
		}
	}
	return false
}

// Compute correlates every metric column of the merged table with DA, per
// language pair, across the systems of that pair.
func Compute(merged *results.Table, langPairs []string) *Table {
	t := &Table{
		LanguagePairs: append([]string(nil), langPairs...),
		Cells:         make(map[string]map[string]float64),
	}

	for _, col := range merged.Columns {
		if col == baseline.ColumnDA {
			continue
		}
		t.Metrics = append(t.Metrics, col)
		t.Cells[col] = make(map[string]float64, len(langPairs))
	}

	for _, lp := range langPairs {
		rows := merged.Filter(lp)
		for _, metric := range t.Metrics {
			if r, ok := Pearson(rows, metric); ok {
				t.Cells[metric][lp] = r
			}
		}
	}

	return t
}

// Pearson correlates metric with DA over rows where both are present, rounded
// to three decimals. It reports false when fewer than two rows qualify or the
// coefficient is undefined.
func Pearson(rows []results.Row, metric string) (float64, bool) {
	var xs, ys []float64
	for _, r := range rows {
		x, okX := r.Get(metric)
		y, okY := r.Get(baseline.ColumnDA)
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) < MinSamples {
		return 0, false
	}

	c := stat.Correlation(xs, ys, nil)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, false
	}
	return roundCoefficient(c), true
}

// roundCoefficient rounds on the exact decimal value of c, half to even.
// Near-tie values therefore follow their true expansion rather than the
// result of scaling by 1000 first: 0.1235 is stored just below the tie and
// rounds to 0.123, 0.0005 just above and rounds to 0.001.
func roundCoefficient(c float64) float64 {
	return utils.RoundDecimal(c, Decimals)
}
