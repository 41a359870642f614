package cmd

import (
	"fmt"

	"github.com/harrison/rgrep/internal/config"
	"github.com/harrison/rgrep/internal/logger"
	"github.com/harrison/rgrep/internal/report"
	"github.com/harrison/rgrep/internal/search"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "1.0.0"

// NewRootCommand creates and returns the root cobra command for rgrep
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

// runState records whether a search ran and how it ended.
type runState struct {
	ran     bool
	outcome search.Outcome
}

// newRootCommand builds the command and returns the state it fills in when run.
func newRootCommand() (*cobra.Command, *runState) {
	state := &runState{}

	cmd := &cobra.Command{
		Use:   "rgrep [flags] <pattern> <path>",
		Short: "Search files for lines containing a literal string",
		Long: `rgrep prints the lines of a file, or of every file below a directory,
that contain a literal substring. The first occurrence on each line is
highlighted when writing to a terminal.

The pattern is matched literally: no regular expression syntax is
interpreted. An empty pattern matches every line.

Exit status: 0 if any line matched, 1 if none did, 2 on error.

Examples:
  rgrep foo notes.txt                 # Lines containing "foo"
  rgrep -in todo main.go              # Case-insensitive, with line numbers
  rgrep -r --include '*.go' ctx src   # Recursive, Go files only
  rgrep -rc error logs/               # Match count per file
  rgrep -rl --exclude-dir vendor x .  # Names of matching files`,
		Version: Version,
		Args:    cobra.ExactArgs(2),
		// Errors are printed by Execute through the diagnostics logger
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			state.ran = true
			state.outcome = runSearch(cmd, args)
			return state.outcome.Err
		},
	}

	cmd.Flags().BoolP("ignore-case", "i", false, "Match case-insensitively")
	cmd.Flags().BoolP("line-numbers", "n", false, "Prefix each matching line with its line number")
	cmd.Flags().BoolP("recursive", "r", false, "Search every file below a directory")
	cmd.Flags().BoolP("count", "c", false, "Print only a count of matching lines per file")
	cmd.Flags().BoolP("files-with-matches", "l", false, "Print only the names of files with a match")
	cmd.Flags().String("color", "auto", "Highlight matches: auto, always or never")
	cmd.Flags().StringArray("include", nil, "Only search files whose name matches this glob (repeatable)")
	cmd.Flags().StringArray("exclude-dir", nil, "Skip directories whose name matches this glob (repeatable)")
	cmd.Flags().BoolP("no-messages", "s", false, "Suppress messages about skipped files")

	cmd.SetVersionTemplate("rgrep version {{.Version}}\n")

	return cmd, state
}

// requestFromFlags builds the SearchRequest from parsed flags and arguments.
func requestFromFlags(cmd *cobra.Command, args []string) (*config.SearchRequest, error) {
	req := config.DefaultSearchRequest()
	req.Pattern = args[0]
	req.Path = args[1]

	flags := cmd.Flags()
	req.IgnoreCase, _ = flags.GetBool("ignore-case")
	req.LineNumbers, _ = flags.GetBool("line-numbers")
	req.Recursive, _ = flags.GetBool("recursive")
	req.CountOnly, _ = flags.GetBool("count")
	req.FilesWithMatches, _ = flags.GetBool("files-with-matches")
	req.Include, _ = flags.GetStringArray("include")
	req.ExcludeDirs, _ = flags.GetStringArray("exclude-dir")
	req.NoMessages, _ = flags.GetBool("no-messages")

	colorFlag, _ := flags.GetString("color")
	mode, err := config.ParseColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	req.Color = mode

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return req, nil
}

// runSearch executes one search with the command's output streams.
func runSearch(cmd *cobra.Command, args []string) search.Outcome {
	req, err := requestFromFlags(cmd, args)
	if err != nil {
		return search.Outcome{Err: err}
	}

	level := "warn"
	if req.NoMessages {
		level = "error"
	}
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), level)

	stdout := cmd.OutOrStdout()
	rep := report.New(stdout, report.Options{
		LineNumbers:      req.LineNumbers,
		CountOnly:        req.CountOnly,
		FilesWithMatches: req.FilesWithMatches,
		Color:            report.ResolveColor(req.Color, stdout),
	})

	return search.NewSearcher(req, rep, log).Run()
}
