package annotation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

const oneSentence = `{"annotated_sentence": [{"entities": [{"id": "/m/01"}]}]}`

func TestDirStore_Load(t *testing.T) {
	root := t.TempDir()
	lpDir := filepath.Join(root, "de-en")
	writeFile(t, lpDir, "newstest2019-deen-src.de", oneSentence)
	writeFile(t, lpDir, "newstest2019-deen-ref.en", oneSentence)
	writeFile(t, lpDir, "newstest2019.online-B.0.de-en", oneSentence)
	writeFile(t, lpDir, "newstest2019.MSRA.MADL.6926.de-en", `{"annotated_sentence": [{"entities": []}]}`)
	writeFile(t, lpDir, ".DS_Store", "junk")

	coll, err := NewDirStore(root).Load([]string{"de-en"})
	require.NoError(t, err)

	assert.Equal(t, []string{"de-en"}, coll.LanguagePairs())
	assert.ElementsMatch(t, []string{"online-B.0", "MSRA.MADL.6926"}, coll.Systems("de-en"))

	src, ok := coll.Get("de-en", RoleSource)
	require.True(t, ok)
	require.Len(t, src.AnnotatedSentences, 1)
	assert.Equal(t, EntityID("/m/01"), src.AnnotatedSentences[0].Entities[0].ID)

	_, ok = coll.Get("de-en", RoleReference)
	assert.True(t, ok)
}

func TestDirStore_Load_Errors(t *testing.T) {
	t.Run("missing language pair dir", func(t *testing.T) {
		_, err := NewDirStore(t.TempDir()).Load([]string{"fi-en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fi-en")
	})

	t.Run("malformed json", func(t *testing.T) {
		root := t.TempDir()
		lpDir := filepath.Join(root, "de-en")
		writeFile(t, lpDir, "newstest2019-deen-src.de", oneSentence)
		writeFile(t, lpDir, "newstest2019-deen-ref.en", "{not json")

		_, err := NewDirStore(root).Load([]string{"de-en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "newstest2019-deen-ref.en")
	})

	t.Run("missing reference", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "de-en"), "newstest2019-deen-src.de", oneSentence)

		_, err := NewDirStore(root).Load([]string{"de-en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing ref")
	})

	t.Run("unexpected file name", func(t *testing.T) {
		root := t.TempDir()
		lpDir := filepath.Join(root, "de-en")
		writeFile(t, lpDir, "newstest2019-deen-src.de", oneSentence)
		writeFile(t, lpDir, "newstest2019-deen-ref.en", oneSentence)
		writeFile(t, lpDir, "notes.txt", oneSentence)

		_, err := NewDirStore(root).Load([]string{"de-en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notes.txt")
	})

	t.Run("no annotated_sentence field", func(t *testing.T) {
		root := t.TempDir()
		lpDir := filepath.Join(root, "de-en")
		writeFile(t, lpDir, "newstest2019-deen-src.de", `{"sentences": []}`)
		writeFile(t, lpDir, "newstest2019-deen-ref.en", oneSentence)

		_, err := NewDirStore(root).Load([]string{"de-en"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "annotated_sentence")
	})

	invalid := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "entity without id",
			content: `{"annotated_sentence": [{"entities": [{"id": "/m/01"}]}, {"entities": [{"id": "/m/02"}, {"text": "Berlin"}]}]}`,
			wantErr: "sentence 1 entity 1 has no id",
		},
		{
			name:    "entity with null id",
			content: `{"annotated_sentence": [{"entities": [{"id": null}]}]}`,
			wantErr: "sentence 0 entity 0 has no id",
		},
		{
			name:    "sentence without entities",
			content: `{"annotated_sentence": [{"entities": []}, {}]}`,
			wantErr: "sentence 1 has no entities",
		},
		{
			name:    "null entities",
			content: `{"annotated_sentence": [{"entities": null}]}`,
			wantErr: "sentence 0 has no entities",
		},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			lpDir := filepath.Join(root, "de-en")
			writeFile(t, lpDir, "newstest2019-deen-src.de", oneSentence)
			writeFile(t, lpDir, "newstest2019-deen-ref.en", oneSentence)
			writeFile(t, lpDir, "newstest2019.online-B.0.de-en", tt.content)

			_, err := NewDirStore(root).Load([]string{"de-en"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "newstest2019.online-B.0.de-en")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDirStore_CustomPrefix(t *testing.T) {
	root := t.TempDir()
	lpDir := filepath.Join(root, "en-de")
	writeFile(t, lpDir, "newstest2020-ende-src.en", oneSentence)
	writeFile(t, lpDir, "newstest2020-ende-ref.de", oneSentence)
	writeFile(t, lpDir, "newstest2020.Tohoku.en-de", oneSentence)

	coll, err := NewDirStore(root, WithFilePrefix("newstest2020.")).Load([]string{"en-de"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tohoku"}, coll.Systems("en-de"))
}

func TestEntityID_UnmarshalJSON(t *testing.T) {
	var s Sentence
	require.NoError(t, json.Unmarshal([]byte(`{"entities": [{"id": 1}, {"id": "1"}, {"id": "/m/0d05w3"}]}`), &s))

	require.Len(t, s.Entities, 3)
	assert.Equal(t, EntityID("1"), s.Entities[0].ID)
	assert.Equal(t, s.Entities[0].ID, s.Entities[1].ID)
	assert.Equal(t, EntityID("/m/0d05w3"), s.Entities[2].ID)

	err := json.Unmarshal([]byte(`{"entities": [{"id": null}]}`), &s)
	assert.Error(t, err)
}
