package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long       string   // long flag name without "--" (e.g., "help")
	Short      string   // short flag without "-" (e.g., "q")
	Help       string   // description text
	Values     []string // suggested completion values (nil = boolean/no suggestions)
	ValueName  string   // label for the value in zsh (e.g., "duration")
	IsFile     bool     // true if the flag takes a file path
	IsExercise bool     // true if values come from the exercise list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "run", Help: "Exercises to run", IsExercise: true, ValueName: "exercise"},
	{Long: "list", Help: "List registered exercises"},
	{Long: "cases", Help: "YAML file of additional cases", IsFile: true, ValueName: "file"},
	{Long: "parallel", Help: "Maximum concurrent cases", Values: []string{"1", "2", "4", "8", "16"}, ValueName: "count"},
	{Long: "case-timeout", Help: "Wall-clock guard per case", Values: []string{"100ms", "1s", "5s", "30s"}, ValueName: "duration"},
	{Long: "timeout", Help: "Wall-clock guard for the whole run", Values: []string{"1m", "5m", "10m", "30m"}, ValueName: "duration"},
	{Long: "verbose", Short: "v", Help: "Per-exercise breakdown and debug logging"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "output", Short: "o", Help: "Report file path", IsFile: true, ValueName: "file"},
	{Long: "tui", Help: "Launch the interactive dashboard"},
	{Long: "metrics-addr", Help: "Prometheus metrics listen address", ValueName: "address"},
	{Long: "log-level", Help: "Log threshold", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - exercises: List of registered exercise names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, exercises []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, exercises)
	case "zsh":
		return generateZshCompletion(out, exercises)
	case "fish":
		return generateFishCompletion(out, exercises)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// formatExerciseList joins exercise names with space separators.
func formatExerciseList(exercises []string) string {
	return strings.Join(exercises, " ")
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, exercises []string) error {
	// Build opts string from registry
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	// Build case entries from registry: exercise flags, then file flags,
	// then remaining flags with static values.
	type caseEntry struct {
		patterns []string
		body     string
	}
	var orderedCases []caseEntry

	for _, f := range flagRegistry {
		if f.IsExercise {
			orderedCases = append(orderedCases, caseEntry{
				patterns: []string{"--" + f.Long},
				body:     `COMPREPLY=( $(compgen -W "${exercises}" -- "${cur}") )`,
			})
		}
	}

	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			if f.Long != "" {
				filePatterns = append(filePatterns, "--"+f.Long)
			}
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
		}
	}
	if len(filePatterns) > 0 {
		orderedCases = append(orderedCases, caseEntry{
			patterns: filePatterns,
			body: `# File/directory completion
            COMPREPLY=( $(compgen -f -- "${cur}") )`,
		})
	}

	for _, f := range flagRegistry {
		if !f.IsExercise && !f.IsFile && len(f.Values) > 0 {
			orderedCases = append(orderedCases, caseEntry{
				patterns: []string{"--" + f.Long},
				body:     fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")),
			})
		}
	}

	// Format case entries
	var caseBody strings.Builder
	for _, c := range orderedCases {
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(c.patterns, "|"))
		caseBody.WriteString(")\n")
		caseBody.WriteString("            ")
		caseBody.WriteString(c.body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	exerciseList := formatExerciseList(exercises)

	script := fmt.Sprintf(`# Bash completion script for katarun
# Add this to your ~/.bashrc or ~/.bash_completion

_katarun_completions() {
    local cur prev opts exercises
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Registered exercises
    exercises="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _katarun_completions katarun
`, strings.Join(opts, " "), exerciseList, caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, exercises []string) error {
	// Build _arguments entries from registry
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	exerciseList := formatExerciseList(exercises)

	script := fmt.Sprintf(`#compdef katarun

# Zsh completion script for katarun
# Add this to your ~/.zshrc or place in $fpath

_katarun() {
    local -a exercises
    exercises=(%s)

    _arguments -s \
%s
}

_katarun "$@"
`, exerciseList, strings.Join(args, " \\\n"))

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	// Build the value suffix
	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if f.IsExercise {
		valueSuffix = fmt.Sprintf(":%s:($exercises)", f.ValueName)
	} else if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		// Value-taking flag with no suggestions
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		// Has both short and long form
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	// Short only
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, exercises []string) error {
	var lines []string

	lines = append(lines, "# Fish completion script for katarun")
	lines = append(lines, "# Add this to ~/.config/fish/completions/katarun.fish")
	lines = append(lines, "")
	lines = append(lines, "# Disable file completion by default")
	lines = append(lines, "complete -c katarun -f")
	lines = append(lines, "")

	// Group flags into sections for comments.
	type section struct {
		comment string
		flags   []FlagCompletion
	}

	sections := []section{
		{comment: "# Help and version", flags: filterFlags("help", "version")},
		{comment: "# Suite selection", flags: filterFlags("run", "list", "cases")},
		{comment: "# Execution options", flags: filterFlags("parallel", "case-timeout", "timeout")},
		{comment: "# Output options", flags: filterFlags("verbose", "quiet", "output", "tui", "metrics-addr", "log-level")},
		{comment: "# Completion", flags: filterFlags("completion")},
	}

	exerciseList := formatExerciseList(exercises)

	for _, sec := range sections {
		lines = append(lines, sec.comment)
		for _, f := range sec.flags {
			lines = append(lines, fishCompleteLine(f, exerciseList))
		}
		lines = append(lines, "")
	}

	script := strings.Join(lines, "\n")

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// filterFlags returns flags from the registry matching the given long names.
func filterFlags(names ...string) []FlagCompletion {
	var result []FlagCompletion
	for _, name := range names {
		for _, f := range flagRegistry {
			if f.Long == name {
				result = append(result, f)
				break
			}
		}
	}
	return result
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, exerciseList string) string {
	var parts []string
	parts = append(parts, "complete -c katarun")

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if f.IsExercise {
		parts = append(parts, fmt.Sprintf("-xa '%s'", exerciseList))
	} else if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		// Takes a value but no suggestions
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}
