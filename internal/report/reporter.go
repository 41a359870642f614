// Package report renders search results to a single output sink.
//
// Output modes:
//   - default: "path:line" for every matching line
//   - line numbers: "path:number:line"
//   - count only: one "path:count" summary per scanned file, no per-line output
//   - files with matches: the path once per file containing a match, no per-line output
//
// The first occurrence of the pattern on each printed line is highlighted when
// color is enabled. With color disabled the text is byte-identical, only unstyled.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/rgrep/internal/linesource"
	"github.com/harrison/rgrep/internal/matcher"
)

// Options selects the output mode.
type Options struct {
	LineNumbers      bool
	CountOnly        bool
	FilesWithMatches bool
	Color            bool
}

// FileResult is the match count accumulated while scanning one file.
type FileResult struct {
	Path    string
	Matches int
}

// OutputError reports a failed write to the output sink.
type OutputError struct {
	Err error
}

// Error implements the error interface for OutputError.
func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

// Unwrap returns the underlying write error.
func (e *OutputError) Unwrap() error {
	return e.Err
}

// Reporter writes per-line results and per-file summaries to w.
type Reporter struct {
	w         io.Writer
	opts      Options
	highlight *color.Color
}

// New creates a Reporter writing to w.
func New(w io.Writer, opts Options) *Reporter {
	highlight := color.New(color.FgRed, color.Bold)
	if opts.Color {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}

	return &Reporter{
		w:         w,
		opts:      opts,
		highlight: highlight,
	}
}

// StopAtFirstMatch reports whether scanning a file can end at its first match.
func (r *Reporter) StopAtFirstMatch() bool {
	return r.opts.FilesWithMatches
}

// EmitsLines reports whether matching lines are printed individually.
func (r *Reporter) EmitsLines() bool {
	return !r.opts.CountOnly && !r.opts.FilesWithMatches
}

// Line prints one matching line. It is a no-op in count and files-with-matches modes.
func (r *Reporter) Line(path string, rec linesource.LineRecord, m *matcher.Matcher) error {
	if !r.EmitsLines() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(path)
	sb.WriteByte(':')
	if r.opts.LineNumbers {
		sb.WriteString(strconv.Itoa(rec.Number()))
		sb.WriteByte(':')
	}

	if span, ok := m.Locate(rec.Text); ok {
		before, matched, after := span.Split(rec.Text)
		sb.WriteString(before)
		sb.WriteString(r.highlight.Sprint(matched))
		sb.WriteString(after)
	} else {
		sb.WriteString(rec.Text)
	}
	sb.WriteByte('\n')

	return r.write(sb.String())
}

// FileDone prints the end-of-file summary for the active mode.
// In files-with-matches mode the path is printed once if the file matched.
// In count mode "path:count" is printed for every scanned file, including zero counts.
func (r *Reporter) FileDone(res FileResult) error {
	if r.opts.FilesWithMatches && res.Matches > 0 {
		if err := r.write(res.Path + "\n"); err != nil {
			return err
		}
	}
	if r.opts.CountOnly {
		if err := r.write(res.Path + ":" + strconv.Itoa(res.Matches) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return &OutputError{Err: err}
	}
	return nil
}
