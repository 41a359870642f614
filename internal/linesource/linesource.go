// Package linesource reads a file as a lazy sequence of decoded text lines.
package linesource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// LineRecord is one line of a file. Index is 0-based; Number gives the display value.
type LineRecord struct {
	Index int
	Text  string
}

// Number returns the 1-based line number used for display.
func (r LineRecord) Number() int {
	return r.Index + 1
}

// FileOpenError reports a file that could not be opened for reading.
type FileOpenError struct {
	Path string
	Err  error
}

// Error implements the error interface for FileOpenError.
func (e *FileOpenError) Error() string {
	return fmt.Sprintf("failed to open file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// LineDecodeError reports a line that could not be read or is not valid UTF-8 text.
type LineDecodeError struct {
	Path string
	Line int // 1-based
	Err  error
}

// Error implements the error interface for LineDecodeError.
func (e *LineDecodeError) Error() string {
	return fmt.Sprintf("failed to read %s at line %d: %v", e.Path, e.Line, e.Err)
}

// Unwrap returns the underlying read or decode error.
func (e *LineDecodeError) Unwrap() error {
	return e.Err
}

// ErrInvalidUTF8 is wrapped by LineDecodeError when a line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Source yields the lines of one file in order. Use it like bufio.Scanner:
//
//	for src.Next() {
//		rec := src.Record()
//	}
//	if err := src.Err(); err != nil { ... }
type Source struct {
	path   string
	closer io.Closer
	reader *bufio.Reader
	rec    LineRecord
	index  int
	err    error
	done   bool
}

// Open opens path for reading. The caller must Close the returned Source.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	src := NewReader(path, f)
	src.closer = f
	return src, nil
}

// NewReader wraps r as a Source. path is only used in error messages.
func NewReader(path string, r io.Reader) *Source {
	return &Source{
		path:   path,
		reader: bufio.NewReader(r),
	}
}

// Next advances to the next line. It returns false at end of input or on error.
func (s *Source) Next() bool {
	if s.done {
		return false
	}

	text, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.fail(err)
		return false
	}
	if err != nil && text == "" {
		s.done = true
		return false
	}
	if err != nil {
		// Last line without a terminator.
		s.done = true
	}

	// A carriage return is only part of the terminator when it precedes "\n".
	if trimmed, ok := strings.CutSuffix(text, "\n"); ok {
		text = strings.TrimSuffix(trimmed, "\r")
	}

	if !utf8.ValidString(text) {
		s.fail(ErrInvalidUTF8)
		return false
	}

	s.rec = LineRecord{Index: s.index, Text: text}
	s.index++
	return true
}

func (s *Source) fail(err error) {
	s.err = &LineDecodeError{Path: s.path, Line: s.index + 1, Err: err}
	s.done = true
}

// Record returns the line produced by the most recent call to Next.
func (s *Source) Record() LineRecord {
	return s.rec
}

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Source) Err() error {
	return s.err
}

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
