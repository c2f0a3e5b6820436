// Package sequence provides the record model for FASTA and FASTQ input.
//
// A Record is a closed sum type over *FastaRecord and *FastqRecord. Both
// variants embed Entry, which carries the fields every downstream statistic
// needs: id, sequence, and GC composition. Use a type switch to reach the
// FASTQ-only quality string.
package sequence

import (
	"fmt"

	"github.com/aria-lang/seqstat-go/internal/composition"
)

// Kind identifies the record variant.
type Kind int

const (
	// Fasta is a '>'-header record.
	Fasta Kind = iota
	// Fastq is an '@'-header record with a quality line.
	Fastq
)

func (k Kind) String() string {
	switch k {
	case Fasta:
		return "FASTA"
	case Fastq:
		return "FASTQ"
	default:
		return "Unknown"
	}
}

// Record is implemented only by *FastaRecord and *FastqRecord.
type Record interface {
	// Common returns the fields shared by all variants.
	Common() *Entry
	// Len returns the sequence length, the key for every length statistic.
	Len() int
	Kind() Kind
	sealed()
}

// Entry holds the fields shared by every record variant.
type Entry struct {
	ID        string              `json:"id"`
	Sequence  string              `json:"sequence"`
	GCCount   int                 `json:"gc_count"`
	GCPercent composition.Percent `json:"gc_percent"`
}

func newEntry(id, seq string) Entry {
	gc := composition.CountGC(seq)
	return Entry{
		ID:        id,
		Sequence:  seq,
		GCCount:   gc,
		GCPercent: composition.NewPercent(gc, len(seq)),
	}
}

// Common returns e.
func (e *Entry) Common() *Entry { return e }

// Len returns the length of the sequence.
func (e *Entry) Len() int { return len(e.Sequence) }

func (e *Entry) sealed() {}

// FastaRecord is a record read from a FASTA file.
type FastaRecord struct {
	Entry
}

// NewFasta builds a FASTA record and computes its GC composition.
func NewFasta(id, seq string) *FastaRecord {
	return &FastaRecord{Entry: newEntry(id, seq)}
}

// Kind returns Fasta.
func (r *FastaRecord) Kind() Kind { return Fasta }

func (r *FastaRecord) String() string {
	return fmt.Sprintf("Sequence ID:'%s' \n Sequence:'%s", r.ID, r.Sequence)
}

// FastqRecord is a record read from a FASTQ file.
//
// Quality is expected to match Sequence in length; a mismatch is kept as
// read and reported by QualityMismatch.
type FastqRecord struct {
	Entry
	Quality string `json:"quality"`
}

// NewFastq builds a FASTQ record and computes its GC composition.
func NewFastq(id, seq, qual string) *FastqRecord {
	return &FastqRecord{Entry: newEntry(id, seq), Quality: qual}
}

// Kind returns Fastq.
func (r *FastqRecord) Kind() Kind { return Fastq }

// QualityMismatch reports whether the quality string length differs from
// the sequence length.
func (r *FastqRecord) QualityMismatch() bool {
	return len(r.Quality) != len(r.Sequence)
}

func (r *FastqRecord) String() string {
	return fmt.Sprintf("Sequence ID:'%s' \n Sequence:'%s' \n Quality:'%s'\n", r.ID, r.Sequence, r.Quality)
}
