package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/kobe/internal/eval/spec"
	"github.com/DjordjeVuckovic/kobe/internal/storage"
)

const (
	modeEval   = "eval"
	modeServe  = "serve"
	modeReport = "report"

	defaultEnvPath = "cmd/kobe/.env"
)

type cliConfig struct {
	Mode       string
	SpecPath   string
	DataDir    string
	Output     string
	Store      string
	FromStore  bool
	ReportPath string
	Env        string
}

func parseFlags(args []string) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("kobe", flag.ContinueOnError)
	fs.StringVar(&cfg.Mode, "mode", modeEval, "Run mode: eval, serve, or report")
	fs.StringVar(&cfg.SpecPath, "spec", "", "Path to evaluation spec YAML (defaults to the built-in WMT19 evaluation)")
	fs.StringVar(&cfg.DataDir, "data", "data", "Directory relative annotation and baseline paths are resolved against")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	fs.StringVar(&cfg.Store, "store", "", "Persist runs to this storage type: pg, es, in_mem, or json (defaults to STORAGE_TYPE)")
	fs.BoolVar(&cfg.FromStore, "from-store", false, "Serve the latest stored run instead of evaluating at startup (serve mode)")
	fs.StringVar(&cfg.ReportPath, "report", "", "Path to a JSON report to render (report mode)")
	fs.StringVar(&cfg.Env, "env", os.Getenv("ENV"), "Environment name; a missing .env file is an error only for local")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c cliConfig) validate() error {
	switch c.Mode {
	case modeEval, modeServe:
	case modeReport:
		if c.ReportPath == "" {
			return fmt.Errorf("report mode requires -report")
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	if c.Store != "" && !storage.Type(c.Store).Valid() {
		return fmt.Errorf("invalid -store %q, expected one of %v", c.Store, storage.Types)
	}
	if c.FromStore && c.Mode != modeServe {
		return fmt.Errorf("-from-store is only valid in serve mode")
	}
	if c.FromStore && !c.storageType().Readable() {
		return fmt.Errorf("-from-store needs a storage that can be read back, got %q", c.storageType())
	}
	return nil
}

// storageType returns the configured sink, the -store flag taking precedence
// over STORAGE_TYPE. Empty means no persistence.
func (c cliConfig) storageType() storage.Type {
	if c.Store != "" {
		return storage.Type(c.Store)
	}
	return storage.Type(os.Getenv("STORAGE_TYPE"))
}

// loadSpec reads the evaluation spec, or the WMT19 default, and resolves its
// relative paths against the data directory.
func (c cliConfig) loadSpec() (*spec.EvalSpec, error) {
	es := spec.Default()
	if c.SpecPath != "" {
		var err error
		es, err = spec.LoadFromFile(c.SpecPath)
		if err != nil {
			return nil, err
		}
	}
	es.ResolvePaths(c.DataDir)
	return es, nil
}
