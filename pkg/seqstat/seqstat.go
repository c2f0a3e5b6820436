// Package seqstat provides a high-level API for FASTA and FASTQ statistics.
//
// Example usage:
//
//	a, err := seqstat.AnalyzeFile("reads.fq", seqstat.FASTQ, seqstat.Filter{MinLength: 50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if a.Summary != nil {
//	    fmt.Println("N50:", a.Summary.N50)
//	}
package seqstat

import (
	"fmt"
	"io"
	"os"

	"github.com/aria-lang/seqstat-go/internal/parser"
	"github.com/aria-lang/seqstat-go/internal/sequence"
	"github.com/aria-lang/seqstat-go/internal/stats"
)

// Re-export types for convenience
type (
	Kind             = sequence.Kind
	Record           = sequence.Record
	FastaRecord      = sequence.FastaRecord
	FastqRecord      = sequence.FastqRecord
	Collection       = sequence.Collection
	Dropped          = sequence.Dropped
	Filter           = parser.Filter
	Summary          = stats.Summary
	LengthStatistics = stats.LengthStatistics
)

// Constants
const (
	FASTA = sequence.Fasta
	FASTQ = sequence.Fastq
)

// Analysis is the result of parsing and summarizing one input.
type Analysis struct {
	Kind Kind
	// Records holds the surviving records in input order.
	Records []Record
	// Dropped counts the records that were read but not kept.
	Dropped Dropped
	// Summary is nil when no record survived.
	Summary *Summary
}

// Empty reports whether no record survived parsing.
func (a *Analysis) Empty() bool {
	return len(a.Records) == 0
}

// Analyze parses r as kind, applying filter, and summarizes the result.
// An input with no surviving records is not an error; Summary is nil.
func Analyze(r io.Reader, kind Kind, filter Filter) (*Analysis, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	c, err := parser.Parse(kind, parser.NewLineSource(r), filter)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Kind:    kind,
		Records: append([]Record(nil), c.Records...),
		Dropped: c.Dropped,
	}
	if c.Len() == 0 {
		return a, nil
	}

	// Summarize reorders c.Records; a.Records keeps input order.
	a.Summary, err = stats.Summarize(c)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// AnalyzeFile opens filename and analyzes it as kind.
func AnalyzeFile(filename string, kind Kind, filter Filter) (*Analysis, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &parser.IOError{Op: "open", Err: err}
	}
	defer file.Close()

	return Analyze(file, kind, filter)
}

// ParseFormat maps a format name (fasta, fa, fastq, fq) to a Kind.
func ParseFormat(name string) (Kind, error) {
	return parser.ParseFormat(name)
}

// DetectFormat infers the Kind from a file extension.
func DetectFormat(filename string) (Kind, error) {
	return parser.DetectFormat(filename)
}

// ReadFASTA reads every record of a FASTA file.
func ReadFASTA(filename string) (*Collection, error) {
	return readFile(filename, FASTA)
}

// ReadFASTQ reads every record of a FASTQ file.
func ReadFASTQ(filename string) (*Collection, error) {
	return readFile(filename, FASTQ)
}

func readFile(filename string, kind Kind) (*Collection, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &parser.IOError{Op: "open", Err: err}
	}
	defer file.Close()

	return parser.Parse(kind, parser.NewLineSource(file), Filter{})
}

// WriteFASTA writes records to a FASTA file. FASTQ records lose their
// quality strings.
func WriteFASTA(filename string, records []Record) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	for _, r := range records {
		if _, err := io.WriteString(file, r.Common().ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}

	return file.Close()
}

// WriteFASTQ writes reads to a FASTQ file.
func WriteFASTQ(filename string, reads []*FastqRecord) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	for _, r := range reads {
		if _, err := io.WriteString(file, r.ToFASTQ()); err != nil {
			return fmt.Errorf("writing read: %w", err)
		}
	}

	return file.Close()
}

// Version returns the seqstat version.
func Version() string {
	return "1.0.0"
}

// Info returns information about seqstat.
func Info() string {
	return fmt.Sprintf(`seqstat v%s - FASTA/FASTQ Statistics

Features:
  - Multi-line FASTA and FASTQ parsing with length filtering
  - Per-record and global GC content
  - Min/max/mean/median read length and N50
  - Phred+33 read quality summary
  - Text and JSON reports
`, Version())
}
