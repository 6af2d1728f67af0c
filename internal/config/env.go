// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/algoforge/katarun/internal/errors"
)

// envConfig mirrors the AppConfig fields that may be supplied through the
// environment. Tags are relative to EnvPrefix.
type envConfig struct {
	Run         string        `env:"RUN"`
	CasesFile   string        `env:"CASES"`
	Parallel    int           `env:"PARALLEL"`
	CaseTimeout time.Duration `env:"CASE_TIMEOUT"`
	Timeout     time.Duration `env:"TIMEOUT"`
	Quiet       bool          `env:"QUIET"`
	Verbose     bool          `env:"VERBOSE"`
	OutputFile  string        `env:"OUTPUT"`
	TUI         bool          `env:"TUI"`
	MetricsAddr string        `env:"METRICS_ADDR"`
	LogLevel    string        `env:"LOG_LEVEL"`
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the KATARUN_ prefix) to the CLI flag
// name(s) it corresponds to and a function that copies the parsed env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(dst *AppConfig, src *envConfig)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"RUN", []string{"run"}, func(dst *AppConfig, src *envConfig) { dst.Run = src.Run }},
	{"CASES", []string{"cases"}, func(dst *AppConfig, src *envConfig) { dst.CasesFile = src.CasesFile }},
	{"PARALLEL", []string{"parallel"}, func(dst *AppConfig, src *envConfig) { dst.Parallel = src.Parallel }},
	{"CASE_TIMEOUT", []string{"case-timeout"}, func(dst *AppConfig, src *envConfig) { dst.CaseTimeout = src.CaseTimeout }},
	{"TIMEOUT", []string{"timeout"}, func(dst *AppConfig, src *envConfig) { dst.Timeout = src.Timeout }},
	{"QUIET", []string{"quiet", "q"}, func(dst *AppConfig, src *envConfig) { dst.Quiet = src.Quiet }},
	{"VERBOSE", []string{"verbose", "v"}, func(dst *AppConfig, src *envConfig) { dst.Verbose = src.Verbose }},
	{"OUTPUT", []string{"output", "o"}, func(dst *AppConfig, src *envConfig) { dst.OutputFile = src.OutputFile }},
	{"TUI", []string{"tui"}, func(dst *AppConfig, src *envConfig) { dst.TUI = src.TUI }},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(dst *AppConfig, src *envConfig) { dst.MetricsAddr = src.MetricsAddr }},
	{"LOG_LEVEL", []string{"log-level"}, func(dst *AppConfig, src *envConfig) { dst.LogLevel = src.LogLevel }},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with KATARUN_):
//   - RUN, CASES, PARALLEL, CASE_TIMEOUT, TIMEOUT, QUIET, VERBOSE,
//     OUTPUT, TUI, METRICS_ADDR, LOG_LEVEL
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) error {
	var parsed envConfig
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: EnvPrefix}); err != nil {
		return apperrors.NewConfigError("invalid environment configuration: %v", err)
	}

	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if _, present := os.LookupEnv(EnvPrefix + o.envKey); !present {
			continue
		}
		o.apply(cfg, &parsed)
	}
	return nil
}
