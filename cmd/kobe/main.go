// Package main KoBE API
// @title KoBE API
// @version 1.0
// @description Knowledge-based entity recall evaluation of machine translation
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/kobe/docs"
	"github.com/DjordjeVuckovic/kobe/internal/api/router"
	"github.com/DjordjeVuckovic/kobe/internal/api/server"
	"github.com/DjordjeVuckovic/kobe/internal/eval/report"
	"github.com/DjordjeVuckovic/kobe/internal/eval/runner"
	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/DjordjeVuckovic/kobe/internal/storage/factory"
	"github.com/DjordjeVuckovic/kobe/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/kobe/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/kobe/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := env.LoadDotEnv(cfg.Env, defaultEnvPath); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	ctx := context.Background()

	switch cfg.Mode {
	case modeEval:
		err = runEval(ctx, cfg)
	case modeServe:
		err = runServe(cfg)
	case modeReport:
		err = runReport(cfg)
	}
	if err != nil {
		slog.Error("kobe failed", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}

func runEval(ctx context.Context, cfg cliConfig) error {
	res, err := evaluate(ctx, cfg)
	if err != nil {
		return err
	}

	if err := outputReport(res.Report(), cfg.Output); err != nil {
		return err
	}

	return persist(ctx, cfg, res)
}

func evaluate(ctx context.Context, cfg cliConfig) (*runner.Result, error) {
	es, err := cfg.loadSpec()
	if err != nil {
		return nil, fmt.Errorf("load spec: %w", err)
	}
	return runner.New(es).RunAll(ctx)
}

func outputReport(rpt *report.Report, outputPath string) error {
	if err := report.WriteTable(rpt, os.Stdout); err != nil {
		return fmt.Errorf("write report table: %w", err)
	}

	if outputPath != "" {
		if err := report.WriteJSON(rpt, outputPath); err != nil {
			return err
		}
		slog.Info("Report written", "path", outputPath)
	}
	return nil
}

func persist(ctx context.Context, cfg cliConfig, res *runner.Result) error {
	typ := cfg.storageType()
	if typ == "" {
		return nil
	}

	storageCfg, err := factory.LoadEnv(typ)
	if err != nil {
		return fmt.Errorf("load storage config: %w", err)
	}
	store, err := factory.New(ctx, storageCfg)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	if err := store.Storer.SaveRun(ctx, storage.NewRun(res)); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

func runReport(cfg cliConfig) error {
	rpt, err := report.ReadJSON(cfg.ReportPath)
	if err != nil {
		return err
	}
	return outputReport(rpt, cfg.Output)
}

func runServe(cfg cliConfig) error {
	sCfg, err := server.LoadConfig()
	if err != nil {
		return fmt.Errorf("load server config: %w", err)
	}

	health := pkgserver.AllHealthChecker{pkgserver.NewOkHealthChecker()}
	var reader storage.Reader

	// The server context is created up front so evaluation and store
	// connections are cancelled by the same signal.
	s := server.New(sCfg, &health)
	ctx := s.Context()

	if cfg.FromStore {
		storageCfg, err := factory.LoadEnv(cfg.storageType())
		if err != nil {
			return fmt.Errorf("load storage config: %w", err)
		}
		store, err := factory.NewReader(ctx, storageCfg)
		if err != nil {
			return fmt.Errorf("create run reader: %w", err)
		}
		defer store.Close()

		reader = store.Reader
		if store.Health != nil {
			health = append(health, store.Health)
		}
	} else {
		res, err := evaluate(ctx, cfg)
		if err != nil {
			return err
		}
		if err := persist(ctx, cfg, res); err != nil {
			return err
		}

		mem := in_mem.NewInMemStorer()
		if err := mem.SaveRun(ctx, storage.NewRun(res)); err != nil {
			return err
		}
		reader = mem
	}

	s.SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "KoBE API is running")
	})

	router.NewRunsRouter(s.Echo, reader).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	return s.Start()
}
