package annotation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	RoleSource    = "src"
	RoleReference = "ref"
)

// EntityID is the identity key of an annotated entity. Annotation files carry
// it either as a JSON string or as a number; both decode to the same key.
type EntityID string

func (id *EntityID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("entity id is null")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode entity id: %w", err)
		}
		*id = EntityID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode entity id: %w", err)
	}
	*id = EntityID(n.String())
	return nil
}

type Entity struct {
	ID EntityID `json:"id"`
}

type Sentence struct {
	Entities []Entity `json:"entities"`
}

// Document is the parsed content of one annotation file.
type Document struct {
	AnnotatedSentences []Sentence `json:"annotated_sentence"`
}

// Collection holds every document of every language pair, keyed by
// language pair and then by role (src, ref or a system name).
type Collection struct {
	order []string
	docs  map[string]map[string]*Document
}

func NewCollection() *Collection {
	return &Collection{docs: make(map[string]map[string]*Document)}
}

func (c *Collection) Add(langPair, role string, doc *Document) {
	roles, ok := c.docs[langPair]
	if !ok {
		roles = make(map[string]*Document)
		c.docs[langPair] = roles
		c.order = append(c.order, langPair)
	}
	roles[role] = doc
}

// LanguagePairs returns the language pairs in insertion order.
func (c *Collection) LanguagePairs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Collection) Get(langPair, role string) (*Document, bool) {
	doc, ok := c.docs[langPair][role]
	return doc, ok
}

// Systems returns every role of the language pair except src and ref.
func (c *Collection) Systems(langPair string) []string {
	var systems []string
	for role := range c.docs[langPair] {
		if role == RoleSource || role == RoleReference {
			continue
		}
		systems = append(systems, role)
	}
	return systems
}
