package suite

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/algoforge/katarun/internal/errors"
)

// caseFile is the YAML schema of an externally authored case file:
//
//	cases:
//	  - exercise: fibonacci
//	    id: extra-13
//	    args: [13]
//	    expected: 233
//	  - exercise: sqrtNewton
//	    id: nine
//	    args: [9, 25]
//	    expected: 3.0
//	    epsilon: 1e-9
//	  - exercise: fibonacci
//	    id: rejects-negative
//	    args: [-5]
//	    expect_error: "negative input"
type caseFile struct {
	Cases []caseEntry `yaml:"cases"`
}

// caseEntry is one YAML case record.
type caseEntry struct {
	Exercise    string  `yaml:"exercise"`
	ID          string  `yaml:"id"`
	Args        []any   `yaml:"args"`
	Expected    any     `yaml:"expected"`
	Epsilon     float64 `yaml:"epsilon"`
	ExpectError string  `yaml:"expect_error"`
	Timeout     string  `yaml:"timeout"`
}

// LoadCaseFile reads additional test cases from a YAML file. The returned
// cases are validated for shape only; exercise-name resolution happens in
// Registry.ValidateCases so the error can name the offending file entry.
//
// Parameters:
//   - path: Path of the YAML case file.
//
// Returns:
//   - []Case: The decoded cases, in file order.
//   - error: A ConfigError describing the first malformed entry.
func LoadCaseFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewConfigError("opening case file: %v", err)
	}
	defer f.Close()
	cases, err := ReadCases(f)
	if err != nil {
		return nil, apperrors.WrapError(err, "case file %s", path)
	}
	return cases, nil
}

// ReadCases decodes a YAML case document from r.
func ReadCases(r io.Reader) ([]Case, error) {
	var file caseFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, apperrors.NewConfigError("decoding YAML: %v", err)
	}

	cases := make([]Case, 0, len(file.Cases))
	for i, entry := range file.Cases {
		c, err := entry.toCase()
		if err != nil {
			return nil, apperrors.WrapError(err, "case %d", i)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// toCase converts a YAML entry into a Case, validating its shape.
func (e caseEntry) toCase() (Case, error) {
	if e.Exercise == "" {
		return Case{}, apperrors.NewConfigError("missing exercise name")
	}
	if e.ID == "" {
		return Case{}, apperrors.NewConfigError("missing case id")
	}
	if e.Expected == nil && e.ExpectError == "" {
		return Case{}, apperrors.NewConfigError("case %s/%s needs either expected or expect_error", e.Exercise, e.ID)
	}
	if e.Expected != nil && e.ExpectError != "" {
		return Case{}, apperrors.NewConfigError("case %s/%s sets both expected and expect_error", e.Exercise, e.ID)
	}
	if e.Epsilon < 0 {
		return Case{}, apperrors.NewConfigError("case %s/%s has negative epsilon", e.Exercise, e.ID)
	}

	var timeout time.Duration
	if e.Timeout != "" {
		d, err := time.ParseDuration(e.Timeout)
		if err != nil {
			return Case{}, apperrors.NewConfigError("case %s/%s has invalid timeout %q: %v", e.Exercise, e.ID, e.Timeout, err)
		}
		if d <= 0 {
			return Case{}, apperrors.NewConfigError("case %s/%s has non-positive timeout %q", e.Exercise, e.ID, e.Timeout)
		}
		timeout = d
	}

	return Case{
		Exercise:    e.Exercise,
		ID:          e.ID,
		Args:        e.Args,
		Expected:    e.Expected,
		Epsilon:     e.Epsilon,
		ExpectError: e.ExpectError,
		Timeout:     timeout,
	}, nil
}

// MergeCases appends extra cases to base, rejecting duplicates of existing
// exercise/id pairs so a case file cannot silently shadow a builtin case.
func MergeCases(base, extra []Case) ([]Case, error) {
	seen := make(map[string]bool, len(base))
	for _, c := range base {
		seen[c.Name()] = true
	}
	merged := append(append([]Case(nil), base...), extra...)
	for _, c := range extra {
		if seen[c.Name()] {
			return nil, apperrors.NewConfigError("case %q already defined in the builtin corpus", c.Name())
		}
		seen[c.Name()] = true
	}
	return merged, nil
}

// DescribeCase renders a one-line description used in verbose output.
func DescribeCase(c Case) string {
	if c.ExpectError != "" {
		return fmt.Sprintf("%s%s => error containing %q", c.Exercise, c.FormatArgs(), c.ExpectError)
	}
	return fmt.Sprintf("%s%s => %v", c.Exercise, c.FormatArgs(), c.Expected)
}
