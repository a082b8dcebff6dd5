package report

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/kobe/internal/eval/correlation"
	"github.com/DjordjeVuckovic/kobe/internal/eval/results"
)

type Report struct {
	Meta         Meta               `json:"meta"`
	Views        []View             `json:"views"`
	Correlations *correlation.Table `json:"correlations"`
	Merged       *results.Table     `json:"merged"`
}

type Meta struct {
	Name        string          `json:"name"`
	RunID       string          `json:"run_id,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// View is one presentation table: metrics as rows, language pairs as columns.
type View struct {
	Name        string    `json:"name"`
	Columns     []string  `json:"columns"`
	Rows        []ViewRow `json:"rows"`
	Placeholder string    `json:"placeholder"`
}

type ViewRow struct {
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

type Cell struct {
	Value   float64
	Present bool
}

func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.Present {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Cell{}
		return nil
	}
	if err := json.Unmarshal(data, &c.Value); err != nil {
		return err
	}
	c.Present = true
	return nil
}

// Row returns the row with the given label.
func (v View) Row(label string) (ViewRow, bool) {
	for _, r := range v.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return ViewRow{}, false
}

func (r ViewRow) allAbsent() bool {
	for _, c := range r.Cells {
		if c.Present {
			return false
		}
	}
	return true
}
