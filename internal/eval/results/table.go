package results

import "sort"

type Key struct {
	LanguagePair string `json:"lp"`
	System       string `json:"system"`
}

type Row struct {
	Key
	Values map[string]float64 `json:"values"`
}

// Get returns the cell of column col and whether it is present.
func (r Row) Get(col string) (float64, bool) {
	v, ok := r.Values[col]
	return v, ok
}

// Table is the merged (language pair, system) table. Columns lists the value
// columns in order; lp and system live in each row's Key.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Filter returns the rows of one language pair.
func (t *Table) Filter(langPair string) []Row {
	var rows []Row
	for _, r := range t.Rows {
		if r.LanguagePair == langPair {
			rows = append(rows, r)
		}
	}
	return rows
}

func (t *Table) Find(k Key) (Row, bool) {
	for _, r := range t.Rows {
		if r.Key == k {
			return r, true
		}
	}
	return Row{}, false
}

func (t *Table) sortRows() {
	sort.Slice(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i].Key, t.Rows[j].Key
		if a.LanguagePair != b.LanguagePair {
			return a.LanguagePair < b.LanguagePair
		}
		return a.System < b.System
	})
}
