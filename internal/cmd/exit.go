package cmd

import (
	"io"

	"github.com/harrison/rgrep/internal/logger"
	"github.com/harrison/rgrep/internal/search"
)

// Process exit statuses
const (
	ExitMatch   = 0 // at least one line matched
	ExitNoMatch = 1 // ran cleanly, nothing matched
	ExitError   = 2 // usage error, invalid path or fatal I/O failure
)

// Execute runs rgrep with args, writing results to stdout and diagnostics to
// stderr, and returns the process exit status. It is the only place an exit
// status is derived.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd, state := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		log := logger.NewConsoleLogger(stderr, "error")
		log.Errorf("%v", err)
		if !state.ran {
			// Argument or flag parsing failed before a search started.
			log.Errorf("run 'rgrep --help' for usage")
			return ExitError
		}
	}

	if !state.ran {
		// --help or --version
		return ExitMatch
	}
	return ExitCode(state.outcome)
}

// ExitCode maps a run outcome to a process exit status.
func ExitCode(outcome search.Outcome) int {
	if outcome.Err != nil {
		return ExitError
	}
	if outcome.Total > 0 {
		return ExitMatch
	}
	return ExitNoMatch
}
