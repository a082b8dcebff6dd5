package es

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/eval/correlation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/report"
	"github.com/DjordjeVuckovic/kobe/internal/eval/results"
	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun() *storage.Run {
	return &storage.Run{
		ID:        uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Name:      "wmt19",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Report: &report.Report{
			Merged: &results.Table{
				Columns: []string{"DA", "BLEU"},
				Rows: []results.Row{
					{Key: results.Key{LanguagePair: "de-en", System: "sysA"}, Values: map[string]float64{"DA": 0.3, "BLEU": 30}},
					{Key: results.Key{LanguagePair: "de-en", System: "sysB"}, Values: map[string]float64{"DA": 0.2}},
				},
			},
			Correlations: &correlation.Table{
				Metrics:       []string{"BLEU"},
				LanguagePairs: []string{"de-en", "fi-en"},
				Cells:         map[string]map[string]float64{"BLEU": {"de-en": 0.5}},
			},
		},
	}
}

func TestRunDocuments(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	docs := runDocuments(testRun(), now)
	require.Len(t, docs, 3)

	assert.Equal(t, KindRow, docs[0].Kind)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001/row/de-en/sysA", docs[0].ID)
	assert.Equal(t, map[string]float64{"DA": 0.3, "BLEU": 30}, docs[0].Values)
	assert.Nil(t, docs[0].Value)

	corr := docs[2]
	assert.Equal(t, KindCorrelation, corr.Kind)
	assert.Equal(t, "BLEU", corr.Metric)
	assert.Equal(t, "de-en", corr.Lp)
	require.NotNil(t, corr.Value)
	assert.Equal(t, 0.5, *corr.Value)
	assert.Equal(t, now, corr.IndexedAt)
	assert.Equal(t, "wmt19", corr.RunName)
}

func TestRunDocuments_NoReport(t *testing.T) {
	run := testRun()
	run.Report = nil
	assert.Empty(t, runDocuments(run, time.Now()))
}
