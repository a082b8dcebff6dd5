package spec

import "path/filepath"

const (
	GroupToEnglish   = "to-en"
	GroupFromEnglish = "from-en"
	GroupNoEnglish   = "no-en"

	DefaultQELabel        = "KoBE"
	DefaultReferenceLabel = "KoBE reference based"
	DefaultPlaceholder    = "--"
	DefaultFilePrefix     = "newstest2019."
)

var (
	DefaultAnnotationsDir = filepath.Join("annotations", "wmt19-submitted-data", "newstest2019")
	DefaultBaselinePath   = filepath.Join("wmt19_metric_task_results", "sys-level_scores_metrics.csv")

	DefaultBaselineMetrics = []string{
		"BLEU", "ibm1-morpheme", "ibm1-pos4gram", "LASIM", "LP", "UNI", "UNI+",
		"USFD", "USFD-TL", "YiSi-2", "YiSi-2_srl",
	}

	// No ibm1 results were reported for pairs involving English in WMT19.
	wmt19NotReported = []string{"ibm1-morpheme", "ibm1-pos4gram"}
)

// Default returns the WMT19 newstest2019 evaluation.
func Default() *EvalSpec {
	return &EvalSpec{
		Name: "wmt19",
		Annotations: AnnotationSource{
			Dir:        DefaultAnnotationsDir,
			FilePrefix: DefaultFilePrefix,
		},
		Baseline: BaselineSource{
			Path:    DefaultBaselinePath,
			Metrics: append([]string(nil), DefaultBaselineMetrics...),
		},
		Groupings: []Grouping{
			{
				Name:          GroupToEnglish,
				LanguagePairs: []string{"de-en", "fi-en", "gu-en", "kk-en", "lt-en", "ru-en", "zh-en"},
				DropRows:      append([]string(nil), wmt19NotReported...),
			},
			{
				Name:          GroupFromEnglish,
				LanguagePairs: []string{"en-cs", "en-de", "en-fi", "en-gu", "en-kk", "en-lt", "en-ru", "en-zh"},
				DropRows:      append([]string(nil), wmt19NotReported...),
			},
			{
				Name:          GroupNoEnglish,
				LanguagePairs: []string{"de-cs", "de-fr", "fr-de"},
			},
		},
		Exclusions: []Exclusion{
			{System: "online-B.0", LanguagePair: "gu-en", Reason: "baseline scores missing"},
		},
		Report: ReportSpec{
			QELabel:        DefaultQELabel,
			ReferenceLabel: DefaultReferenceLabel,
			Placeholder:    DefaultPlaceholder,
			ReferenceView: ReferenceView{
				Grouping:       GroupToEnglish,
				BaselineMetric: "BLEU",
			},
		},
	}
}

// ResolvePaths makes the annotation and baseline paths absolute against base.
func (s *EvalSpec) ResolvePaths(base string) {
	if s.Annotations.Dir != "" && !filepath.IsAbs(s.Annotations.Dir) {
		s.Annotations.Dir = filepath.Join(base, s.Annotations.Dir)
	}
	if s.Baseline.Path != "" && !filepath.IsAbs(s.Baseline.Path) {
		s.Baseline.Path = filepath.Join(base, s.Baseline.Path)
	}
}
