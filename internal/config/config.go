package config

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	apperrors "github.com/algoforge/katarun/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "KATARUN_"

// Default values applied when neither a flag nor an environment variable is set.
const (
	// DefaultTimeout bounds the whole run.
	DefaultTimeout = 5 * time.Minute
	// DefaultCaseTimeout bounds a single case.
	DefaultCaseTimeout = 5 * time.Second
	// DefaultLogLevel is the structured log threshold.
	DefaultLogLevel = "info"
)

// AppConfig holds the complete runtime configuration of the application.
// It is populated from command-line flags with environment variable
// fallbacks, following the priority: CLI flags > Environment > Defaults.
type AppConfig struct {
	// Run selects the exercises to execute, comma-separated. Empty runs all.
	Run string
	// List requests the exercise listing mode instead of a run.
	List bool
	// CasesFile is an optional YAML file of extra cases to merge in.
	CasesFile string
	// Parallel caps the number of concurrently executing cases.
	// Zero means one worker per available CPU.
	Parallel int
	// CaseTimeout is the per-case wall-clock guard. Negative disables it.
	CaseTimeout time.Duration
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet reduces output to failures and the aggregate line.
	Quiet bool
	// Verbose enables the per-exercise breakdown and debug logging.
	Verbose bool
	// OutputFile writes the report to a file in addition to stdout.
	OutputFile string
	// TUI launches the interactive dashboard instead of the plain CLI.
	TUI bool
	// MetricsAddr exposes Prometheus metrics on the given address when set.
	MetricsAddr string
	// LogLevel is the structured log threshold (debug, info, warn, error).
	LogLevel string
	// Completion requests a shell completion script (bash, zsh, fish).
	Completion string
	// Version requests the version banner.
	Version bool
}

// RunNames returns the parsed -run selection, nil when empty.
func (c AppConfig) RunNames() []string {
	if strings.TrimSpace(c.Run) == "" {
		return nil
	}
	parts := strings.Split(c.Run, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// ParseConfig parses command-line arguments and environment variables into
// an AppConfig.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for usage and parse error output.
//   - exerciseNames: The registered exercise names, used for validation
//     and usage output.
//
// Returns:
//   - AppConfig: The validated configuration.
//   - error: flag.ErrHelp when -help was requested, a ConfigError on
//     invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer, exerciseNames []string) (AppConfig, error) {
	cfg := AppConfig{
		CaseTimeout: DefaultCaseTimeout,
		Timeout:     DefaultTimeout,
		LogLevel:    DefaultLogLevel,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Run, "run", cfg.Run, "comma-separated exercises to run (default: all)")
	fs.BoolVar(&cfg.List, "list", cfg.List, "list registered exercises and exit")
	fs.StringVar(&cfg.CasesFile, "cases", cfg.CasesFile, "YAML file of additional cases to merge into the suite")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "maximum cases executing concurrently (0 = number of CPUs)")
	fs.DurationVar(&cfg.CaseTimeout, "case-timeout", cfg.CaseTimeout, "wall-clock guard per case (negative disables)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "wall-clock guard for the whole run")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "reduce output to failures and the aggregate line")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "per-exercise breakdown and debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "shorthand for -verbose")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "also write the report to this file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "shorthand for -output")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "launch the interactive dashboard")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "expose Prometheus metrics on this address (e.g. :9090)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log threshold: debug, info, warn or error")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "print a completion script for the given shell (bash, zsh, fish)")
	fs.BoolVar(&cfg.Version, "version", cfg.Version, "print version information and exit")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\nOptions:\n", programName)
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nExercises:\n  %s\n", strings.Join(exerciseNames, ", "))
		fmt.Fprintf(errWriter, "\nEnvironment variables (overridden by flags): %sRUN, %sPARALLEL, %sCASE_TIMEOUT, ...\n", EnvPrefix, EnvPrefix, EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return AppConfig{}, err
	}

	if err := validate(&cfg, exerciseNames); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations the rest of the application cannot honor.
func validate(cfg *AppConfig, exerciseNames []string) error {
	known := make(map[string]bool, len(exerciseNames))
	for _, name := range exerciseNames {
		known[name] = true
	}
	for _, name := range cfg.RunNames() {
		if !known[name] {
			sorted := append([]string(nil), exerciseNames...)
			sort.Strings(sorted)
			return apperrors.NewConfigError("unknown exercise %q (known: %s)", name, strings.Join(sorted, ", "))
		}
	}

	if cfg.Parallel < 0 {
		return apperrors.NewConfigError("-parallel must not be negative, got %d", cfg.Parallel)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("-timeout must be positive, got %v", cfg.Timeout)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.NewConfigError("unknown log level %q", cfg.LogLevel)
	}

	switch cfg.Completion {
	case "", "bash", "zsh", "fish":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q (supported: bash, zsh, fish)", cfg.Completion)
	}

	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose are mutually exclusive")
	}
	if cfg.TUI && cfg.Quiet {
		return apperrors.NewConfigError("-tui and -quiet are mutually exclusive")
	}
	return nil
}
