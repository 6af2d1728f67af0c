package app

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/algoforge/katarun/internal/cli"
	apperrors "github.com/algoforge/katarun/internal/errors"
	"github.com/algoforge/katarun/internal/harness"
	"github.com/algoforge/katarun/internal/logging"
	"github.com/algoforge/katarun/internal/metrics"
	"github.com/algoforge/katarun/internal/suite"
	"github.com/algoforge/katarun/internal/tui"
)

// runSuite orchestrates a plain CLI suite run.
func (a *Application) runSuite(ctx context.Context, cases []suite.Case, out io.Writer) int {
	logger := a.newLogger()

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	opts := harness.Options{
		Workers:     a.Config.Parallel,
		CaseTimeout: a.Config.CaseTimeout,
		Logger:      logger,
	}

	if a.Config.MetricsAddr != "" {
		m := metrics.NewMetrics()
		opts.Recorder = m
		go func() {
			if err := m.Serve(ctx, a.Config.MetricsAddr, logger); err != nil {
				logger.Error("metrics server stopped", logging.Err(err))
			}
		}()
	}

	var progressReporter harness.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = harness.NullProgressReporter{}
	} else {
		_, order := suite.CountByExercise(cases)
		cli.PrintRunConfig(len(cases), len(order), opts.Workers, opts.CaseTimeout, out)
		progressReporter = cli.CLIProgressReporter{}
	}

	start := time.Now()
	results := harness.ExecuteSuite(ctx, a.Registry, cases, opts, progressReporter, progressOut)
	summary := harness.Summarize(results, time.Since(start))

	if opts.Recorder != nil {
		if m, ok := opts.Recorder.(*metrics.Metrics); ok {
			m.ObserveSuite(summary.Duration)
		}
	}

	outputConfig := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.DisplaySummaryWithConfig(out, summary, results, cli.CLISuitePresenter{}, outputConfig); err != nil {
		logger.Error("report output failed", logging.Err(err))
	}

	if code, interrupted := interruptionExitCode(ctx); interrupted {
		return code
	}
	return summary.ExitCode()
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context, cases []suite.Case) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	opts := harness.Options{
		Workers:     a.Config.Parallel,
		CaseTimeout: a.Config.CaseTimeout,
		Logger:      logging.NopLogger{},
	}

	return tui.Run(ctx, a.Registry, cases, opts, Version)
}

// newLogger builds the structured logger for this invocation.
func (a *Application) newLogger() logging.Logger {
	if a.Config.Quiet {
		return logging.NopLogger{}
	}
	return logging.NewLogger(os.Stderr, "katarun")
}

// interruptionExitCode maps a finished run context to an exit code.
func interruptionExitCode(ctx context.Context) (int, bool) {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperrors.ExitErrorTimeout, true
	case errors.Is(ctx.Err(), context.Canceled):
		return apperrors.ExitErrorCanceled, true
	default:
		return apperrors.ExitSuccess, false
	}
}
