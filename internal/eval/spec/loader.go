package spec

import (
	"fmt"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/kobe/internal/apperr"
	"gopkg.in/yaml.v3"
)

// reserved column names that cannot be used as baseline metrics
var reserved = map[string]bool{
	"lp":                   true,
	"DA":                   true,
	"system":               true,
	"entity_recall_qe":     true,
	"entity_recall_metric": true,
}

func LoadFromFile(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML evaluation spec. Omitted sections keep their WMT19
// defaults.
func Parse(data []byte) (*EvalSpec, error) {
	s := Default()
	var raw EvalSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	overlay(s, &raw)

	if err := Validate(s); err != nil {
		return nil, apperr.NewValidationWrap("invalid evaluation spec", err)
	}
	return s, nil
}

func overlay(dst, src *EvalSpec) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Annotations.Dir != "" {
		dst.Annotations.Dir = src.Annotations.Dir
	}
	if src.Annotations.FilePrefix != "" {
		dst.Annotations.FilePrefix = src.Annotations.FilePrefix
	}
	if src.Baseline.Path != "" {
		dst.Baseline.Path = src.Baseline.Path
	}
	if len(src.Baseline.Metrics) > 0 {
		dst.Baseline.Metrics = src.Baseline.Metrics
	}
	if len(src.Groupings) > 0 {
		dst.Groupings = src.Groupings
	}
	if src.Exclusions != nil {
		dst.Exclusions = src.Exclusions
	}
	if src.Report.QELabel != "" {
		dst.Report.QELabel = src.Report.QELabel
	}
	if src.Report.ReferenceLabel != "" {
		dst.Report.ReferenceLabel = src.Report.ReferenceLabel
	}
	if src.Report.Placeholder != "" {
		dst.Report.Placeholder = src.Report.Placeholder
	}
	if src.Report.ReferenceView.Grouping != "" {
		dst.Report.ReferenceView.Grouping = src.Report.ReferenceView.Grouping
	}
	if src.Report.ReferenceView.BaselineMetric != "" {
		dst.Report.ReferenceView.BaselineMetric = src.Report.ReferenceView.BaselineMetric
	}
}

func Validate(s *EvalSpec) error {
	if len(s.Groupings) == 0 {
		return fmt.Errorf("spec has no groupings")
	}
	names := make(map[string]bool, len(s.Groupings))
	for i, g := range s.Groupings {
		if g.Name == "" {
			return fmt.Errorf("grouping at index %d has no name", i)
		}
		if names[g.Name] {
			return fmt.Errorf("duplicate grouping %q", g.Name)
		}
		names[g.Name] = true
		if len(g.LanguagePairs) == 0 {
			return fmt.Errorf("grouping %q has no language pairs", g.Name)
		}
		for _, lp := range g.LanguagePairs {
			if err := validateLanguagePair(lp); err != nil {
				return fmt.Errorf("grouping %q: %w", g.Name, err)
			}
		}
	}

	if len(s.Baseline.Metrics) == 0 {
		return fmt.Errorf("spec has no baseline metrics")
	}
	seen := make(map[string]bool, len(s.Baseline.Metrics))
	for _, m := range s.Baseline.Metrics {
		if reserved[m] {
			return fmt.Errorf("baseline metric %q uses a reserved column name", m)
		}
		if seen[m] {
			return fmt.Errorf("duplicate baseline metric %q", m)
		}
		seen[m] = true
	}

	for i, ex := range s.Exclusions {
		if ex.System == "" || ex.LanguagePair == "" {
			return fmt.Errorf("exclusion at index %d needs both system and lp", i)
		}
	}

	rv := s.Report.ReferenceView
	if _, ok := s.Grouping(rv.Grouping); !ok {
		return fmt.Errorf("reference view references unknown grouping %q", rv.Grouping)
	}
	if !seen[rv.BaselineMetric] {
		return fmt.Errorf("reference view references unknown baseline metric %q", rv.BaselineMetric)
	}
	return nil
}

func validateLanguagePair(lp string) error {
	src, tgt, ok := strings.Cut(lp, "-")
	if !ok || src == "" || tgt == "" || strings.Contains(tgt, "-") {
		return fmt.Errorf("invalid language pair %q, expected <src>-<tgt>", lp)
	}
	return nil
}
