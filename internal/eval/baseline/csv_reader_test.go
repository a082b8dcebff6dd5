package baseline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `,lp,DA,system,BLEU,chrF,YiSi-2
0,de-en,0.146,online-B.0,42.1,0.61,0.8
1,de-en,0.101,MSRA.MADL.6926,39.5,,0.79
2,gu-en,0.210,online-B.0,,NaN,0.5
3,ja-en,0.5,some-system,20.0,0.4,0.3
`

func TestCSVReader_Read(t *testing.T) {
	reader := NewCSVReader(strings.NewReader(sampleCSV), []string{"BLEU", "YiSi-2"})

	table, err := reader.Read([]string{"de-en", "gu-en"})
	require.NoError(t, err)

	assert.Equal(t, []string{"BLEU", "YiSi-2"}, table.Metrics)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, Row{
		LanguagePair: "de-en",
		System:       "online-B.0",
		Values:       map[string]float64{"DA": 0.146, "BLEU": 42.1, "YiSi-2": 0.8},
	}, table.Rows[0])

	// chrF is not a configured metric so its empty cell does not matter.
	assert.Equal(t, map[string]float64{"DA": 0.101, "BLEU": 39.5, "YiSi-2": 0.79}, table.Rows[1].Values)

	_, hasBLEU := table.Rows[2].Values["BLEU"]
	assert.False(t, hasBLEU)
	assert.Equal(t, 0.5, table.Rows[2].Values["YiSi-2"])
}

func TestCSVReader_UnnamedIndexColumn(t *testing.T) {
	csvData := "Unnamed: 0,lp,DA,system,BLEU\n0,de-en,0.1,sys,30\n"

	table, err := NewCSVReader(strings.NewReader(csvData), []string{"BLEU"}).Read([]string{"de-en"})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.NotContains(t, table.Rows[0].Values, "Unnamed: 0")
	assert.Len(t, table.Rows[0].Values, 2)
}

func TestCSVReader_Errors(t *testing.T) {
	t.Run("missing metric column", func(t *testing.T) {
		_, err := NewCSVReader(strings.NewReader(sampleCSV), []string{"LASIM"}).Read([]string{"de-en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LASIM")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := NewCSVReader(strings.NewReader(""), nil).Read(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("invalid score", func(t *testing.T) {
		csvData := "lp,DA,system,BLEU\nde-en,high,sys,30\n"
		_, err := NewCSVReader(strings.NewReader(csvData), []string{"BLEU"}).Read([]string{"de-en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2 column DA")
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	table, err := ReadFile(path, []string{"BLEU"}, []string{"gu-en"})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "online-B.0", table.Rows[0].System)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), nil, nil)
	assert.Error(t, err)
}
