// Package stats computes length, contiguity and composition statistics
// over a parsed sequence collection.
//
// The median and N50 computations reorder the collection's records in
// place. Callers that need input order afterwards must copy the records
// before calling them.
package stats

import (
	"fmt"

	"github.com/aria-lang/seqstat-go/internal/composition"
	"github.com/aria-lang/seqstat-go/internal/quality"
	"github.com/aria-lang/seqstat-go/internal/sequence"
)

// EmptyInputError is returned when a statistic is requested for a
// collection with no records.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "no records: collection is empty"
}

// Summary gathers every statistic for one collection.
type Summary struct {
	Format           string                 `json:"format"`
	Count            int                    `json:"count"`
	TotalNucleotides int                    `json:"total_nucleotides"`
	GlobalGCCount    int                    `json:"global_gc_count"`
	GlobalGCPercent  composition.Percent    `json:"global_gc_percent"`
	Lengths          LengthStatistics       `json:"lengths"`
	N50              int                    `json:"n50"`
	Bases            composition.BaseCounts `json:"bases"`
	Dropped          sequence.Dropped       `json:"dropped"`
	Quality          *quality.Summary       `json:"quality,omitempty"`
}

// Summarize computes the length statistics, N50, base composition and,
// for FASTQ input, the read quality summary. It reorders c.Records.
func Summarize(c *sequence.Collection) (*Summary, error) {
	lengths, err := ComputeLengthStatistics(c)
	if err != nil {
		return nil, err
	}

	var bases composition.BaseCounts
	for _, r := range c.Records {
		bases.Add(r.Common().Sequence)
	}

	s := &Summary{
		Format:           c.Kind.String(),
		Count:            c.Len(),
		TotalNucleotides: c.TotalNucleotides(),
		GlobalGCCount:    c.GlobalGCCount(),
		GlobalGCPercent:  c.Tally().Percent(),
		Lengths:          lengths,
		N50:              N50(c),
		Bases:            bases,
		Dropped:          c.Dropped,
	}
	if c.Kind == sequence.Fastq {
		s.Quality = quality.Summarize(c.Records)
	}
	return s, nil
}

func (s *Summary) String() string {
	out := fmt.Sprintf(`Summary {
  format: %s
  count: %d
  total_nucleotides: %d
  length range: %d - %d
  mean length: %d
  median length: %d
  global GC: %s
  N50: %d
  dropped: %d
}`, s.Format, s.Count, s.TotalNucleotides, s.Lengths.Min, s.Lengths.Max,
		s.Lengths.Mean, s.Lengths.Median, s.GlobalGCPercent, s.N50, s.Dropped.Total())
	if s.Quality != nil {
		out += "\n" + s.Quality.String()
	}
	return out
}
