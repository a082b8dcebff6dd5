package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/eval/annotation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/baseline"
	"github.com/DjordjeVuckovic/kobe/internal/eval/correlation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/report"
	"github.com/DjordjeVuckovic/kobe/internal/eval/results"
	"github.com/DjordjeVuckovic/kobe/internal/eval/scorer"
	"github.com/DjordjeVuckovic/kobe/internal/eval/spec"
	"github.com/google/uuid"
)

// BaselineLoader returns the baseline metric table restricted to langPairs.
type BaselineLoader func(metrics, langPairs []string) (*baseline.Table, error)

type Option func(*Runner)

func WithAnnotationStore(s annotation.Store) Option {
	return func(r *Runner) {
		r.store = s
	}
}

func WithBaselineLoader(l BaselineLoader) Option {
	return func(r *Runner) {
		r.loadBaseline = l
	}
}

type Runner struct {
	spec         *spec.EvalSpec
	store        annotation.Store
	loadBaseline BaselineLoader
	calc         *scorer.Calculator
}

// New creates a runner reading annotations and baseline scores from the paths
// of es unless overridden by opts.
func New(es *spec.EvalSpec, opts ...Option) *Runner {
	r := &Runner{
		spec: es,
		store: annotation.NewDirStore(
			es.Annotations.Dir,
			annotation.WithFilePrefix(es.Annotations.FilePrefix),
		),
		loadBaseline: func(metrics, langPairs []string) (*baseline.Table, error) {
			return baseline.ReadFile(es.Baseline.Path, metrics, langPairs)
		},
		calc: scorer.NewCalculator(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAll scores every language pair of the spec, merges the scores with the
// baseline metrics, correlates everything with DA and builds the report views.
func (r *Runner) RunAll(ctx context.Context) (*Result, error) {
	if err := spec.Validate(r.spec); err != nil {
		return nil, fmt.Errorf("validate spec: %w", err)
	}

	res := &Result{
		RunID:     uuid.New(),
		Name:      r.spec.Name,
		StartedAt: time.Now().UTC(),
	}
	langPairs := r.spec.AllLanguagePairs()

	slog.Info("starting evaluation", "run_id", res.RunID, "name", res.Name, "language_pairs", len(langPairs))

	coll, err := r.store.Load(langPairs)
	if err != nil {
		return nil, fmt.Errorf("load annotations: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Scores, err = r.calc.Calculate(coll)
	if err != nil {
		return nil, fmt.Errorf("calculate entity recall: %w", err)
	}
	slog.Info("entity recall calculated", "records", len(res.Scores))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := r.loadBaseline(r.spec.Baseline.Metrics, langPairs)
	if err != nil {
		return nil, fmt.Errorf("load baseline: %w", err)
	}
	slog.Info("baseline loaded", "rows", len(base.Rows), "metrics", len(base.Metrics))

	res.Merged, err = results.Merge(res.Scores, base, r.spec.Exclusions)
	if err != nil {
		return nil, fmt.Errorf("merge results: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Correlations = correlation.Compute(res.Merged, langPairs)

	res.Views, err = report.NewBuilder(r.spec.Report).Build(res.Correlations, r.spec.Groupings)
	if err != nil {
		return nil, fmt.Errorf("build report views: %w", err)
	}

	res.Duration = time.Since(res.StartedAt)
	slog.Info("evaluation finished", "run_id", res.RunID, "rows", len(res.Merged.Rows), "took", res.Duration)

	return res, nil
}
