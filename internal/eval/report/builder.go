package report

import (
	"fmt"

	"github.com/DjordjeVuckovic/kobe/internal/eval/correlation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/scorer"
	"github.com/DjordjeVuckovic/kobe/internal/eval/spec"
)

const (
	ReferenceViewName = "reference"

	// referencePlaceholder is used by the reference view, which keeps
	// undefined correlations visible as NaN.
	referencePlaceholder = "NaN"
)

type Builder struct {
	cfg spec.ReportSpec
}

func NewBuilder(cfg spec.ReportSpec) *Builder {
	return &Builder{cfg: cfg}
}

// Grouping builds the view of one language pair grouping. The reference-based
// row is left out, the reference-free row gets its public label, rows with no
// defined cell and the grouping's drop rows are removed.
func (b *Builder) Grouping(t *correlation.Table, g spec.Grouping) View {
	drop := make(map[string]bool, len(g.DropRows)+1)
	drop[scorer.ColumnEntityRecallMetric] = true
	for _, r := range g.DropRows {
		drop[r] = true
	}

	v := View{
		Name:        g.Name,
		Columns:     append([]string(nil), g.LanguagePairs...),
		Placeholder: b.placeholder(),
	}

	for _, metric := range t.Metrics {
		if drop[metric] {
			continue
		}
		row := b.row(t, metric, g.LanguagePairs)
		if row.allAbsent() {
			continue
		}
		if metric == scorer.ColumnEntityRecallQE {
			row.Label = b.cfg.QELabel
		}
		v.Rows = append(v.Rows, row)
	}

	return v
}

// ReferenceView puts the reference-based entity recall next to the configured
// baseline metric on the language pairs of g.
func (b *Builder) ReferenceView(t *correlation.Table, g spec.Grouping) View {
	v := View{
		Name:        ReferenceViewName,
		Columns:     append([]string(nil), g.LanguagePairs...),
		Placeholder: referencePlaceholder,
	}

	for _, metric := range []string{b.cfg.ReferenceView.BaselineMetric, scorer.ColumnEntityRecallMetric} {
		if !t.HasMetric(metric) {
			continue
		}
		row := b.row(t, metric, g.LanguagePairs)
		if metric == scorer.ColumnEntityRecallMetric {
			row.Label = b.cfg.ReferenceLabel
		}
		v.Rows = append(v.Rows, row)
	}

	return v
}

// Build returns one view per grouping followed by the reference view.
func (b *Builder) Build(t *correlation.Table, groupings []spec.Grouping) ([]View, error) {
	views := make([]View, 0, len(groupings)+1)
	var refGroup *spec.Grouping

	for i := range groupings {
		views = append(views, b.Grouping(t, groupings[i]))
		if groupings[i].Name == b.cfg.ReferenceView.Grouping {
			refGroup = &groupings[i]
		}
	}
	if refGroup == nil {
		return nil, fmt.Errorf("reference view grouping %q not found", b.cfg.ReferenceView.Grouping)
	}

	return append(views, b.ReferenceView(t, *refGroup)), nil
}

func (b *Builder) row(t *correlation.Table, metric string, langPairs []string) ViewRow {
	row := ViewRow{Label: metric, Cells: make([]Cell, len(langPairs))}
	for i, lp := range langPairs {
		if v, ok := t.Get(metric, lp); ok {
			row.Cells[i] = Cell{Value: v, Present: true}
		}
	}
	return row
}

func (b *Builder) placeholder() string {
	if b.cfg.Placeholder == "" {
		return spec.DefaultPlaceholder
	}
	return b.cfg.Placeholder
}
