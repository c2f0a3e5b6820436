package stats

import (
	"fmt"

	"github.com/aria-lang/seqstat-go/internal/sequence"
)

// LengthStatistics summarizes sequence lengths.
//
// Mean is the floor of total nucleotides over record count. Median is the
// length at index n/2 of an ascending ordering, so for an even count it is
// the upper-middle value rather than an average.
type LengthStatistics struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Mean   int `json:"mean"`
	Median int `json:"median"`
}

// ComputeLengthStatistics returns min, max, mean and median length.
// It partially reorders c.Records while selecting the median.
func ComputeLengthStatistics(c *sequence.Collection) (LengthStatistics, error) {
	n := c.Len()
	if n == 0 {
		return LengthStatistics{}, &EmptyInputError{}
	}

	return LengthStatistics{
		Min:    c.MinLength(),
		Max:    c.MaxLength(),
		Mean:   c.TotalNucleotides() / n,
		Median: Median(c.Records),
	}, nil
}

// Median returns the length at index len(records)/2 of an ascending
// ordering by length, or 0 for no records. It runs a selection in
// expected linear time and reorders records in place.
func Median(records []sequence.Record) int {
	if len(records) == 0 {
		return 0
	}
	k := len(records) / 2
	selectNth(records, k)
	return records[k].Len()
}

// selectNth reorders records so that records[k] holds the record that
// would be at index k when sorted by length, with no longer record before
// it and no shorter record after it. It uses a three-way partition so
// runs of equal lengths, common in FASTQ reads, stay linear.
func selectNth(records []sequence.Record, k int) {
	lo, hi := 0, len(records)
	for hi-lo > 1 {
		pivot := medianOfThree(
			records[lo].Len(),
			records[lo+(hi-lo)/2].Len(),
			records[hi-1].Len(),
		)

		// [lo,lt) < pivot, [lt,i) == pivot, [gt,hi) > pivot
		lt, i, gt := lo, lo, hi
		for i < gt {
			switch l := records[i].Len(); {
			case l < pivot:
				records[lt], records[i] = records[i], records[lt]
				lt++
				i++
			case l > pivot:
				gt--
				records[gt], records[i] = records[i], records[gt]
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt
		case k >= gt:
			lo = gt
		default:
			return
		}
	}
}

func medianOfThree(a, b, c int) int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}

func (s LengthStatistics) String() string {
	return fmt.Sprintf("LengthStatistics { min: %d, max: %d, mean: %d, median: %d }",
		s.Min, s.Max, s.Mean, s.Median)
}
