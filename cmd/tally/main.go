package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/tally-lab/project-tally/internal/core/config"
	corerrors "github.com/tally-lab/project-tally/internal/core/errors"
	"github.com/tally-lab/project-tally/internal/run"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	inputPath := flag.String("input", "", "Input CSV path (overrides config)")
	flag.Parse()

	// Logs go to stderr: stdout carries the JSON document and nothing else.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(corerrors.ExitInternal)
	}

	// Input path precedence: positional arg > -input flag > config/env.
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if flag.NArg() > 0 {
		cfg.Input.Path = flag.Arg(0)
	}

	runner := run.New(cfg, logger, os.Stdout)
	n, err := runner.Run()
	if err != nil {
		slog.Error("Run failed", "kind", string(corerrors.KindOf(err)), "error", err)
		os.Exit(corerrors.ExitCode(err))
	}
	slog.Info("Run complete", "records", n)
}
