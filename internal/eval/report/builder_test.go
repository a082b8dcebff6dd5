package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/eval/correlation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corrTable() *correlation.Table {
	return &correlation.Table{
		Metrics:       []string{"BLEU", "ibm1-morpheme", "LASIM", "entity_recall_qe", "entity_recall_metric"},
		LanguagePairs: []string{"de-en", "fi-en", "de-fr"},
		Cells: map[string]map[string]float64{
			"BLEU":                 {"de-en": 0.849, "fi-en": 0.982, "de-fr": 0.864},
			"ibm1-morpheme":        {"de-en": -0.345, "de-fr": 0.1},
			"LASIM":                {"de-fr": 0.2},
			"entity_recall_qe":     {"de-en": 0.5, "fi-en": 0.6},
			"entity_recall_metric": {"de-en": 0.7},
		},
	}
}

var toEn = spec.Grouping{
	Name:          spec.GroupToEnglish,
	LanguagePairs: []string{"de-en", "fi-en"},
	DropRows:      []string{"ibm1-morpheme"},
}

func TestBuilder_Grouping(t *testing.T) {
	b := NewBuilder(spec.Default().Report)
	v := b.Grouping(corrTable(), toEn)

	assert.Equal(t, spec.GroupToEnglish, v.Name)
	assert.Equal(t, []string{"de-en", "fi-en"}, v.Columns)
	assert.Equal(t, "--", v.Placeholder)

	var labels []string
	for _, r := range v.Rows {
		labels = append(labels, r.Label)
	}
	// LASIM has no value on these pairs, ibm1 is dropped by config and the
	// reference-based row never shows up in grouping views.
	assert.Equal(t, []string{"BLEU", "KoBE"}, labels)

	kobe, ok := v.Row("KoBE")
	require.True(t, ok)
	assert.Equal(t, []Cell{{Value: 0.5, Present: true}, {Value: 0.6, Present: true}}, kobe.Cells)
}

func TestBuilder_Grouping_Placeholder(t *testing.T) {
	noEn := spec.Grouping{Name: spec.GroupNoEnglish, LanguagePairs: []string{"de-fr", "fi-en"}}
	v := NewBuilder(spec.Default().Report).Grouping(corrTable(), noEn)

	lasim, ok := v.Row("LASIM")
	require.True(t, ok)
	assert.True(t, lasim.Cells[0].Present)
	assert.False(t, lasim.Cells[1].Present)

	var buf bytes.Buffer
	require.NoError(t, WriteView(v, &buf))
	assert.Contains(t, buf.String(), "--")
	assert.Contains(t, buf.String(), "0.200")
	assert.Contains(t, buf.String(), "ibm1-morpheme")
}

func TestBuilder_ReferenceView(t *testing.T) {
	v := NewBuilder(spec.Default().Report).ReferenceView(corrTable(), toEn)

	assert.Equal(t, ReferenceViewName, v.Name)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, "BLEU", v.Rows[0].Label)
	assert.Equal(t, "KoBE reference based", v.Rows[1].Label)
	assert.Equal(t, []Cell{{Value: 0.7, Present: true}, {}}, v.Rows[1].Cells)

	var buf bytes.Buffer
	require.NoError(t, WriteView(v, &buf))
	assert.Contains(t, buf.String(), "NaN")
}

func TestBuilder_Build(t *testing.T) {
	groupings := []spec.Grouping{toEn, {Name: spec.GroupNoEnglish, LanguagePairs: []string{"de-fr"}}}

	views, err := NewBuilder(spec.Default().Report).Build(corrTable(), groupings)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, spec.GroupToEnglish, views[0].Name)
	assert.Equal(t, spec.GroupNoEnglish, views[1].Name)
	assert.Equal(t, ReferenceViewName, views[2].Name)

	_, err = NewBuilder(spec.Default().Report).Build(corrTable(), groupings[1:])
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	views, err := NewBuilder(spec.Default().Report).Build(corrTable(), []spec.Grouping{toEn})
	require.NoError(t, err)

	r := &Report{Meta: Meta{Name: "wmt19"}, Views: views}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(r, &buf))

	out := buf.String()
	assert.Contains(t, out, "wmt19")
	assert.Contains(t, out, "--- to-en ---")
	assert.Contains(t, out, "KoBE")
	assert.Contains(t, out, "0.849")
	assert.NotContains(t, out, "ibm1-morpheme")
}

func TestJSONRoundTrip(t *testing.T) {
	v := NewBuilder(spec.Default().Report).ReferenceView(corrTable(), toEn)
	r := &Report{
		Meta:         Meta{Name: "wmt19", Timestamp: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Environment: NewEnvironmentInfo()},
		Views:        []View{v},
		Correlations: corrTable(),
	}

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(r, path))

	loaded, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, r.Views, loaded.Views)
	assert.Equal(t, r.Correlations, loaded.Correlations)
	assert.True(t, r.Meta.Timestamp.Equal(loaded.Meta.Timestamp))
}
