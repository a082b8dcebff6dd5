package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/kobe/internal/eval/report"
	"github.com/DjordjeVuckovic/kobe/internal/eval/scorer"
	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{db: pool.conn}, nil
}

func (r *Reader) LatestRun(ctx context.Context) (*storage.Run, error) {
	var (
		run        storage.Run
		reportJSON []byte
	)
	err := r.db.QueryRow(ctx, `
        SELECT id, name, created_at, report
        FROM eval_runs
        ORDER BY created_at DESC
        LIMIT 1
    `).Scan(&run.ID, &run.Name, &run.CreatedAt, &reportJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}

	var rep report.Report
	if err := json.Unmarshal(reportJSON, &rep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report of run %s: %w", run.ID, err)
	}
	run.Report = &rep

	rows, err := r.db.Query(ctx, `
        SELECT lp, system, entity_recall_qe, entity_recall_metric
        FROM eval_scores
        WHERE run_id = $1
        ORDER BY lp, system
    `, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores of run %s: %w", run.ID, err)
	}
	run.Scores, err = pgx.CollectRows(rows, pgx.RowToStructByPos[scorer.Record])
	if err != nil {
		return nil, fmt.Errorf("failed to scan scores of run %s: %w", run.ID, err)
	}

	return &run, nil
}
