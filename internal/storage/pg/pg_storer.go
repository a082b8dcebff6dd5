package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.conn}, nil
}

// SaveRun stores the run, its scores and its correlation cells in one
// transaction.
func (s *Storer) SaveRun(ctx context.Context, run *storage.Run) error {
	reportJSON, err := json.Marshal(run.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO eval_runs (id, name, created_at, report)
        VALUES ($1, $2, $3, $4)
    `, run.ID, run.Name, run.CreatedAt, reportJSON)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	scoreRows := make([][]interface{}, len(run.Scores))
	for i, r := range run.Scores {
		scoreRows[i] = []interface{}{run.ID, r.LanguagePair, r.System, r.EntityRecallQE, r.EntityRecallMetric}
	}
	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"eval_scores"},
		[]string{"run_id", "lp", "system", "entity_recall_qe", "entity_recall_metric"},
		pgx.CopyFromRows(scoreRows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert scores: %w", err)
	}

	corrRows := correlationRows(run)
	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"eval_correlations"},
		[]string{"run_id", "metric", "lp", "value"},
		pgx.CopyFromRows(corrRows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert correlations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	slog.Info("run saved to postgres", "id", run.ID, "scores", len(scoreRows), "correlations", len(corrRows))
	return nil
}

func correlationRows(run *storage.Run) [][]interface{} {
	if run.Report == nil || run.Report.Correlations == nil {
		return nil
	}
	t := run.Report.Correlations

	var rows [][]interface{}
	for _, metric := range t.Metrics {
		for _, lp := range t.LanguagePairs {
			if v, ok := t.Get(metric, lp); ok {
				rows = append(rows, []interface{}{run.ID, metric, lp, v})
			}
		}
	}
	return rows
}
