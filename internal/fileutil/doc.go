// Package fileutil provides directory traversal for recursive searches.
//
// # Purpose
//
// ScanDirectory walks a directory tree and hands every regular file to a visitor,
// one file at a time, in lexical order. Nothing is collected up front, so the
// visitor can open, scan and close each file before the next one is discovered.
//
// # Filtering
//
//   - Include: globs (github.com/gobwas/glob syntax) matched against file base
//     names. When empty, every regular file is visited.
//   - ExcludeDirs: globs matched against directory base names. Matching
//     directories are not entered. The root directory is never excluded.
//
// Hidden files and directories are not skipped implicitly.
//
// # Symlinks
//
// A root that is a symlink to a directory is followed. Symlinks found below the
// root are neither followed nor visited.
//
// # Error Tolerance
//
// Entries that cannot be read (for example a subdirectory without read permission)
// are reported to the ErrorFunc as *TraversalError and skipped; the walk continues.
// Only an inaccessible root, an invalid glob, or an error returned by the visitor
// ends the scan early.
//
// # Usage
//
//	err := fileutil.ScanDirectory("src", fileutil.ScanOptions{
//	    Include:     []string{"*.go"},
//	    ExcludeDirs: []string{"vendor", ".git"},
//	}, func(path string) error {
//	    return scan(path)
//	}, func(err *fileutil.TraversalError) {
//	    log.Printf("skipping: %v", err)
//	})
package fileutil
