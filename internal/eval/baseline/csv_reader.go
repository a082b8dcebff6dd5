package baseline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	ColumnLanguagePair = "lp"
	ColumnDA           = "DA"
	ColumnSystem       = "system"
)

// Row is one (language pair, system) line of the baseline table. Values maps
// DA and every baseline metric to its score; missing scores are absent keys.
type Row struct {
	LanguagePair string
	System       string
	Values       map[string]float64
}

// Table is the baseline metrics table restricted to the evaluated language
// pairs. Metrics keeps the configured column order.
type Table struct {
	Metrics []string
	Rows    []Row
}

type CSVReader struct {
	reader  io.Reader
	metrics []string
}

func NewCSVReader(reader io.Reader, metrics []string) *CSVReader {
	return &CSVReader{
		reader:  reader,
		metrics: metrics,
	}
}

// ReadFile opens path and reads it with a CSVReader.
func ReadFile(path string, metrics []string, langPairs []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open baseline table: %w", err)
	}
	defer f.Close()

	t, err := NewCSVReader(f, metrics).Read(langPairs)
	if err != nil {
		return nil, fmt.Errorf("read baseline table %s: %w", path, err)
	}
	return t, nil
}

// Read parses the table and keeps only rows whose lp is in langPairs.
func (cr *CSVReader) Read(langPairs []string) (*Table, error) {
	csvReader := csv.NewReader(cr.reader)

	headers, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("baseline table is empty")
		}
		return nil, err
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if isAnonymousIndex(h) {
			continue
		}
		index[h] = i
	}

	wanted := append([]string{ColumnLanguagePair, ColumnDA, ColumnSystem}, cr.metrics...)
	for _, col := range wanted {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("baseline table has no %q column", col)
		}
	}

	keep := make(map[string]bool, len(langPairs))
	for _, lp := range langPairs {
		keep[lp] = true
	}

	t := &Table{Metrics: append([]string(nil), cr.metrics...)}
	valueCols := append([]string{ColumnDA}, cr.metrics...)
	line := 1

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		lp := record[index[ColumnLanguagePair]]
		if !keep[lp] {
			continue
		}

		row := Row{
			LanguagePair: lp,
			System:       record[index[ColumnSystem]],
			Values:       make(map[string]float64, len(valueCols)),
		}
		for _, col := range valueCols {
			v, ok, err := parseCell(record[index[col]])
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, col, err)
			}
			if ok {
				row.Values[col] = v
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func isAnonymousIndex(header string) bool {
	return strings.TrimSpace(header) == "" || strings.HasPrefix(header, "Unnamed: ")
}

// parseCell reports ok=false for empty or NaN cells.
func parseCell(raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "nan", "na", "n/a", "null":
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid score %q: %w", raw, err)
	}
	return v, true, nil
}
