package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and exercises its main entry points.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "katarun"
	if runtime.GOOS == "windows" {
		binName = "katarun.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test sets the working directory to the test package, so the
	// module root is two levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/katarun")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build katarun: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Full Suite Quiet",
			args:     []string{"-q"},
			wantOut:  "PASS",
			wantCode: 0,
		},
		{
			name:     "Single Exercise",
			args:     []string{"-run", "fibonacci", "-q"},
			wantOut:  "PASS",
			wantCode: 0,
		},
		{
			name:     "List Exercises",
			args:     []string{"-list"},
			wantOut:  "fibonacci",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "katarun",
			wantCode: 0,
		},
		{
			name:     "Unknown Exercise",
			args:     []string{"-run", "noSuchExercise"},
			wantOut:  "unknown exercise",
			wantCode: 4,
		},
		{
			name:     "Bash Completion",
			args:     []string{"-completion", "bash"},
			wantOut:  "_katarun_completions",
			wantCode: 0,
		},
		{
			name:     "Verbose Rollup",
			args:     []string{"-run", "isPrime", "-v"},
			wantOut:  "isPrime",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("command failed unexpectedly: %v\noutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("expected exit code %d, but command succeeded.\noutput: %s", tt.wantCode, outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Errorf("exit code mismatch: got %d, want %d", exitErr.ExitCode(), tt.wantCode)
					}
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("output missing expected string.\nexpected: %q\ngot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}

func TestCLI_FailingCaseFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	tmpDir := t.TempDir()
	binPath := filepath.Join(tmpDir, "katarun")

	build := exec.Command("go", "build", "-o", binPath, "./cmd/katarun")
	build.Dir = "../.."
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build katarun: %v", err)
	}

	casesPath := filepath.Join(tmpDir, "cases.yaml")
	content := `cases:
  - exercise: fibonacci
    id: wrong-answer
    args: [10]
    expected: 1
`
	if err := os.WriteFile(casesPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(binPath, "-cases", casesPath, "-run", "fibonacci")
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	output, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v\noutput: %s", err, output)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("expected exit code 3 for failures, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(output), "wrong-answer") {
		t.Errorf("expected failure report to name the case, got:\n%s", output)
	}
}
