// Package search drives a literal-substring search over a file or a directory tree.
//
// A Searcher decides how to treat the target path, scans each file sequentially
// through the matcher and reporter, and aggregates a total match count. It never
// terminates the process; callers turn the returned Outcome into an exit status.
package search

import (
	"os"

	"github.com/harrison/rgrep/internal/config"
	"github.com/harrison/rgrep/internal/fileutil"
	"github.com/harrison/rgrep/internal/linesource"
	"github.com/harrison/rgrep/internal/matcher"
	"github.com/harrison/rgrep/internal/report"
)

// Logger receives diagnostics for entries skipped during a recursive search.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Outcome summarizes one run.
type Outcome struct {
	// Total is the number of matching lines across all successfully scanned files
	Total int
	// FilesScanned counts files whose scan completed
	FilesScanned int
	// FilesSkipped counts files and entries skipped after an error
	FilesSkipped int
	// Err is the error that ended the run, nil if it completed
	Err error
}

// Searcher runs one SearchRequest.
type Searcher struct {
	req      *config.SearchRequest
	matcher  *matcher.Matcher
	reporter *report.Reporter
	log      Logger
}

// NewSearcher creates a Searcher that reports through reporter and logs skips to log.
func NewSearcher(req *config.SearchRequest, reporter *report.Reporter, log Logger) *Searcher {
	return &Searcher{
		req:      req,
		matcher:  matcher.New(req.Pattern, req.IgnoreCase),
		reporter: reporter,
		log:      log,
	}
}

// Run searches the request's target path.
//
//   - regular file: scanned directly; any error ends the run
//   - directory without recursion: UsageError, nothing scanned
//   - directory with recursion: every regular file beneath it is scanned; open,
//     decode and traversal errors are logged and skipped
//   - anything else: InvalidPathError
func (s *Searcher) Run() Outcome {
	path := s.req.Path

	info, err := os.Stat(path)
	if err != nil {
		return Outcome{Err: &InvalidPathError{Path: path, Err: err}}
	}

	switch {
	case info.Mode().IsRegular():
		res, err := s.ScanFile(path)
		if err != nil {
			return Outcome{Err: err}
		}
		return Outcome{Total: res.Matches, FilesScanned: 1}

	case info.IsDir():
		if !s.req.Recursive {
			return Outcome{Err: &UsageError{Path: path}}
		}
		return s.scanTree(path)

	default:
		return Outcome{Err: &InvalidPathError{Path: path}}
	}
}

func (s *Searcher) scanTree(root string) Outcome {
	var out Outcome

	opts := fileutil.ScanOptions{
		Include:     s.req.Include,
		ExcludeDirs: s.req.ExcludeDirs,
	}

	err := fileutil.ScanDirectory(root, opts, func(path string) error {
		res, err := s.ScanFile(path)
		if err != nil {
			if IsSkippable(err) {
				out.FilesSkipped++
				s.warn(err)
				return nil
			}
			return err
		}
		out.FilesScanned++
		out.Total += res.Matches
		return nil
	}, func(err *fileutil.TraversalError) {
		out.FilesSkipped++
		s.warn(err)
	})

	out.Err = err
	return out
}

func (s *Searcher) warn(err error) {
	if s.log != nil {
		s.log.Warnf("%v", err)
	}
}

// ScanFile scans one file and reports its matches. Lines are evaluated in order;
// in files-with-matches mode the scan stops at the first match. A match counts
// once per line regardless of how often the pattern occurs in it.
func (s *Searcher) ScanFile(path string) (report.FileResult, error) {
	res := report.FileResult{Path: path}

	src, err := linesource.Open(path)
	if err != nil {
		return res, err
	}
	defer src.Close()

	for src.Next() {
		rec := src.Record()
		if !s.matcher.Match(rec.Text) {
			continue
		}

		res.Matches++
		if s.reporter.StopAtFirstMatch() {
			break
		}
		if err := s.reporter.Line(path, rec, s.matcher); err != nil {
			return res, err
		}
	}
	if err := src.Err(); err != nil {
		return res, err
	}

	if err := s.reporter.FileDone(res); err != nil {
		return res, err
	}
	return res, nil
}
