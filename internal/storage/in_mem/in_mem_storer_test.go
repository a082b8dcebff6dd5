package in_mem

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStorer_LatestRun(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	_, err := s.LatestRun(ctx)
	assert.ErrorIs(t, err, storage.ErrNoRuns)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := &storage.Run{ID: uuid.New(), Name: "wmt19", CreatedAt: base}
	newer := &storage.Run{ID: uuid.New(), Name: "wmt19", CreatedAt: base.Add(time.Hour)}

	require.NoError(t, s.SaveRun(ctx, newer))
	require.NoError(t, s.SaveRun(ctx, older))

	got, err := s.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
}
