package spec

type EvalSpec struct {
	Name        string           `yaml:"name"`
	Annotations AnnotationSource `yaml:"annotations"`
	Baseline    BaselineSource   `yaml:"baseline"`
	Groupings   []Grouping       `yaml:"groupings"`
	Exclusions  []Exclusion      `yaml:"exclusions"`
	Report      ReportSpec       `yaml:"report"`
}

type AnnotationSource struct {
	Dir        string `yaml:"dir"`
	FilePrefix string `yaml:"file_prefix"`
}

type BaselineSource struct {
	Path    string   `yaml:"path"`
	Metrics []string `yaml:"metrics"`
}

// Grouping is a named set of language pairs reported together, e.g. every
// pair translating into English.
type Grouping struct {
	Name          string   `yaml:"name"`
	LanguagePairs []string `yaml:"language_pairs"`
	DropRows      []string `yaml:"drop_rows,omitempty"`
}

// Exclusion removes one (system, language pair) row from the merged table.
type Exclusion struct {
	System       string `yaml:"system"`
	LanguagePair string `yaml:"lp"`
	Reason       string `yaml:"reason,omitempty"`
}

type ReportSpec struct {
	QELabel        string        `yaml:"qe_label"`
	ReferenceLabel string        `yaml:"reference_label"`
	Placeholder    string        `yaml:"placeholder"`
	ReferenceView  ReferenceView `yaml:"reference_view"`
}

type ReferenceView struct {
	Grouping       string `yaml:"grouping"`
	BaselineMetric string `yaml:"baseline_metric"`
}

// AllLanguagePairs returns the language pairs of every grouping, first
// occurrence wins.
func (s *EvalSpec) AllLanguagePairs() []string {
	seen := make(map[string]bool)
	var lps []string
	for _, g := range s.Groupings {
		for _, lp := range g.LanguagePairs {
			if !seen[lp] {
				seen[lp] = true
				lps = append(lps, lp)
			}
		}
	}
	return lps
}

func (s *EvalSpec) Grouping(name string) (Grouping, bool) {
	for _, g := range s.Groupings {
		if g.Name == name {
			return g, true
		}
	}
	return Grouping{}, false
}
