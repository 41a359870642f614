package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Include lists globs matched against file base names; empty means every file
	Include []string
	// ExcludeDirs lists globs matched against directory base names that are not entered
	ExcludeDirs []string
}

// TraversalError reports a directory entry that could not be read during a scan.
// Scanning continues past it.
type TraversalError struct {
	Path string
	Err  error
}

// Error implements the error interface for TraversalError.
func (e *TraversalError) Error() string {
	return fmt.Sprintf("error accessing %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *TraversalError) Unwrap() error {
	return e.Err
}

// VisitFunc is called for each regular file found by ScanDirectory.
// Returning an error stops the scan and ScanDirectory returns that error.
type VisitFunc func(path string) error

// ErrorFunc receives non-fatal traversal errors.
type ErrorFunc func(err *TraversalError)

// Scanner walks directory trees applying compiled include/exclude globs.
type Scanner struct {
	include     []glob.Glob
	excludeDirs []glob.Glob
}

// NewScanner compiles the globs in opts.
func NewScanner(opts ScanOptions) (*Scanner, error) {
	s := &Scanner{}

	for _, pattern := range opts.Include {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include glob %q: %w", pattern, err)
		}
		s.include = append(s.include, g)
	}

	for _, pattern := range opts.ExcludeDirs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude-dir glob %q: %w", pattern, err)
		}
		s.excludeDirs = append(s.excludeDirs, g)
	}

	return s, nil
}

// ScanDirectory calls visit for every regular file beneath dir, in lexical order,
// one at a time. Visited paths keep dir as typed as their prefix. Symlinks below
// the root are not followed. Entries that cannot be read are passed to onError
// and skipped.
func ScanDirectory(dir string, opts ScanOptions, visit VisitFunc, onError ErrorFunc) error {
	s, err := NewScanner(opts)
	if err != nil {
		return err
	}
	return s.Scan(dir, visit, onError)
}

// Scan walks dir with the scanner's filters. See ScanDirectory.
func (s *Scanner) Scan(dir string, visit VisitFunc, onError ErrorFunc) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dir)
	}

	// The root is followed even when it is a symlink.
	root := dir
	if linfo, err := os.Lstat(dir); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		root = dir + string(filepath.Separator)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if onError != nil {
				onError(&TraversalError{Path: displayPath(dir, root, path), Err: err})
			}
			return nil // Continue walking
		}

		if d.IsDir() {
			if path != root && s.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !s.included(d.Name()) {
			return nil
		}

		return visit(displayPath(dir, root, path))
	})
}

// displayPath rebuilds a walked path on top of the root exactly as the caller
// typed it, so "./src" yields "./src/a.txt" rather than the cleaned "src/a.txt".
func displayPath(dir, root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return dir
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + rel
	}
	return dir + string(filepath.Separator) + rel
}

func (s *Scanner) included(name string) bool {
	if len(s.include) == 0 {
		return true
	}
	return matchesAny(s.include, name)
}

func (s *Scanner) excluded(name string) bool {
	return matchesAny(s.excludeDirs, name)
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

