// Package parser extracts FASTA and FASTQ records from a line source.
//
// Both parsers apply the length filter as each record is finalized and
// build a sequence.Collection holding the surviving records and the
// run-level GC totals. Parsing is synchronous and fully materializes the
// collection before returning.
package parser

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// MaxLineBytes bounds the length of a single input line. Unwrapped
// chromosome-scale FASTA lines fit comfortably.
const MaxLineBytes = 1 << 30

// ErrInvalidUTF8 is wrapped by IOError when a line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("line is not valid UTF-8")

// LineSource furnishes input lines in order. It is satisfied by
// *bufio.Scanner: Scan advances and reports false at end of input or on
// failure, Text returns the current line without its terminator, and Err
// reports the failure, if any.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// NewLineSource returns a line scanner over r that accepts lines up to
// MaxLineBytes and strips "\n" and "\r\n" terminators.
func NewLineSource(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	return scanner
}

// lineReader wraps a LineSource with line numbering and decode checks.
type lineReader struct {
	src  LineSource
	line int
	err  error
}

func (r *lineReader) next() (string, bool) {
	if r.err != nil || !r.src.Scan() {
		return "", false
	}
	r.line++
	text := r.src.Text()
	if !utf8.ValidString(text) {
		r.err = &IOError{Op: "decode", Line: r.line, Err: ErrInvalidUTF8}
		return "", false
	}
	return text, true
}

func (r *lineReader) Err() error {
	if r.err != nil {
		return r.err
	}
	if err := r.src.Err(); err != nil {
		return &IOError{Op: "read", Line: r.line + 1, Err: err}
	}
	return nil
}
