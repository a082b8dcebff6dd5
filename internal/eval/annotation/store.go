package annotation

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const DefaultFilePrefix = "newstest2019."

type Store interface {
	Load(langPairs []string) (*Collection, error)
}

// DirStore reads annotations laid out as <root>/<lang pair>/<file>, one file
// per role.
type DirStore struct {
	root       string
	filePrefix string
}

type DirStoreOption func(*DirStore)

func WithFilePrefix(prefix string) DirStoreOption {
	return func(s *DirStore) {
		s.filePrefix = prefix
	}
}

func NewDirStore(root string, opts ...DirStoreOption) *DirStore {
	s := &DirStore{
		root:       root,
		filePrefix: DefaultFilePrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DirStore) Load(langPairs []string) (*Collection, error) {
	coll := NewCollection()

	for _, lp := range langPairs {
		slog.Info("read annotations", "lp", lp)

		dir := filepath.Join(s.root, lp)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read annotations dir for %s: %w", lp, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}

			role, err := s.roleFromFilename(entry.Name(), lp)
			if err != nil {
				return nil, err
			}

			doc, err := ReadDocument(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("lp %s: %w", lp, err)
			}
			coll.Add(lp, role, doc)
		}

		for _, required := range []string{RoleSource, RoleReference} {
			if _, ok := coll.Get(lp, required); !ok {
				return nil, fmt.Errorf("lp %s: missing %s annotations in %s", lp, required, dir)
			}
		}
	}

	return coll, nil
}

func (s *DirStore) roleFromFilename(name, langPair string) (string, error) {
	switch {
	case strings.Contains(name, "-ref."):
		return RoleReference, nil
	case strings.Contains(name, "-src."):
		return RoleSource, nil
	}

	suffix := "." + langPair
	if !strings.HasPrefix(name, s.filePrefix) || !strings.HasSuffix(name, suffix) ||
		len(name) <= len(s.filePrefix)+len(suffix) {
		return "", fmt.Errorf("lp %s: unexpected annotation file name %q", langPair, name)
	}
	return name[len(s.filePrefix) : len(name)-len(suffix)], nil
}

// rawDocument mirrors Document with pointer fields so a missing or null
// entities list or entity id can be told apart from an empty one.
type rawDocument struct {
	AnnotatedSentences []struct {
		Entities *[]struct {
			ID *EntityID `json:"id"`
		} `json:"entities"`
	} `json:"annotated_sentence"`
}

func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotation file: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)

	var raw rawDocument
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse annotation file %s: %w", name, err)
	}
	if raw.AnnotatedSentences == nil {
		return nil, fmt.Errorf("annotation file %s has no annotated_sentence", name)
	}

	doc := &Document{AnnotatedSentences: make([]Sentence, len(raw.AnnotatedSentences))}
	for i, rs := range raw.AnnotatedSentences {
		if rs.Entities == nil {
			return nil, fmt.Errorf("annotation file %s: sentence %d has no entities", name, i)
		}
		entities := make([]Entity, len(*rs.Entities))
		for j, re := range *rs.Entities {
			if re.ID == nil {
				return nil, fmt.Errorf("annotation file %s: sentence %d entity %d has no id", name, i, j)
			}
			entities[j] = Entity{ID: *re.ID}
		}
		doc.AnnotatedSentences[i] = Sentence{Entities: entities}
	}
	return doc, nil
}
