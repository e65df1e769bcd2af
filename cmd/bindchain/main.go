// Package main implements the bindchain CLI, which runs the sequence,
// optional and annotated-value chains and prints their results.
//
// Usage:
//
//	bindchain                          Run every scenario with built-in defaults
//	bindchain --config scenarios.yaml  Overlay scenarios from a YAML file
//	bindchain --only optional          Run a subset of scenarios
//	bindchain --metrics                Print transform counters after the run
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ib-77/bindchain/internal/config"
	"github.com/ib-77/bindchain/internal/demo"
	"github.com/ib-77/bindchain/internal/logging"
	"github.com/ib-77/bindchain/internal/metrics"
	"github.com/ib-77/bindchain/internal/ui"
)

const (
	exitSuccess = 0
	exitConfig  = 1
	exitInput   = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("bindchain", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML scenario file")
	only := fs.StringSlice("only", nil, "Scenarios to run: sequence, optional, annotated (default: all)")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	showMetrics := fs.Bool("metrics", false, "Print transform counters after the run")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: bindchain [options]

Description:
  Run the bind-chain demonstration: a forking sequence, integer-only
  optional arithmetic and annotated arithmetic with an accumulated log.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  bindchain
  bindchain --only optional --log-level debug
  bindchain --config scenarios.yaml --metrics
`)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return exitInput
	}

	ui.InitColors(*noColor)

	logger, err := logging.New(*logLevel, os.Stderr)
	if err != nil {
		ui.Errorf("%v", err)
		return exitInput
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	kinds := make([]demo.Kind, 0, len(*only))
	for _, name := range *only {
		k, err := demo.ParseKind(name)
		if err != nil {
			ui.Errorf("%v", err)
			return exitInput
		}
		kinds = append(kinds, k)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", zap.String("path", *configPath), zap.Error(err))
		ui.Errorf("%v", err)
		return exitConfig
	}

	var rec *metrics.Recorder
	if *showMetrics {
		rec = metrics.NewRecorder()
	}

	runner, err := demo.NewRunner(cfg, rec, logger)
	if err != nil {
		logger.Error("invalid scenario", zap.Error(err))
		ui.Errorf("%v", err)
		return exitConfig
	}

	logger.Info("running scenarios", zap.Int("kinds", len(kinds)))
	printOutcomes(runner.Run(kinds...))

	if rec != nil {
		if err := printMetrics(rec); err != nil {
			logger.Warn("failed to gather metrics", zap.Error(err))
		}
	}
	return exitSuccess
}
