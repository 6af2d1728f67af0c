package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/algoforge/katarun/internal/cli"
	"github.com/algoforge/katarun/internal/config"
	apperrors "github.com/algoforge/katarun/internal/errors"
	"github.com/algoforge/katarun/internal/logging"
	"github.com/algoforge/katarun/internal/suite"
	"github.com/algoforge/katarun/internal/ui"
)

// Application represents the katarun application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *suite.Registry
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom exercise registry for the application.
func WithRegistry(r *suite.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = suite.Builtin()
	}

	programName := "katarun"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.Names())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	level := logging.ParseLevel(a.Config.LogLevel)
	if a.Config.Verbose && a.Config.LogLevel == config.DefaultLogLevel {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(false)

	cases, err := a.loadCases()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error loading cases: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if a.Config.List {
		cli.DisplayExerciseList(a.Registry, cases, out)
		return apperrors.ExitSuccess
	}

	if a.Config.TUI {
		return a.runTUI(ctx, cases)
	}

	return a.runSuite(ctx, cases, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.Names()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// loadCases assembles the case set for this invocation: the built-in cases,
// optionally merged with a user-provided case file, filtered by -run.
func (a *Application) loadCases() ([]suite.Case, error) {
	cases := suite.BuiltinCases()

	if a.Config.CasesFile != "" {
		extra, err := suite.LoadCaseFile(a.Config.CasesFile)
		if err != nil {
			return nil, err
		}
		if err := a.Registry.ValidateCases(extra); err != nil {
			return nil, err
		}
		cases, err = suite.MergeCases(cases, extra)
		if err != nil {
			return nil, err
		}
	}

	if names := a.Config.RunNames(); len(names) > 0 {
		return a.Registry.FilterCases(cases, names)
	}
	return cases, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
