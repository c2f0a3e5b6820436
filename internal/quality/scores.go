// Package quality decodes Phred+33 FASTQ quality strings and summarizes
// the read quality of a parsed collection.
//
// A Phred score Q maps to a base-call error probability P by
//
//	Q = -10 * log10(P)
//
// so Q20 is a 1% error rate and Q30, the usual "high quality" cut, is 0.1%.
// Quality strings are never corrected here. A string that cannot be decoded
// is counted, not repaired.
package quality

import (
	"fmt"
	"math"
)

// Phred+33 covers the printable ASCII range '!' (Q0) to '~' (Q93).
const (
	Phred33Offset = 33
	PhredMin      = 0
	PhredMax      = 93
)

// Quality thresholds
const (
	QLow       = 10 // 90% accuracy
	QMedium    = 20 // 99% accuracy
	QHigh      = 30 // 99.9% accuracy
	QExcellent = 40 // 99.99% accuracy
)

// Category buckets a read by its mean score.
type Category int

const (
	Poor      Category = iota // below QLow
	Low                       // QLow to QMedium
	Medium                    // QMedium to QHigh
	High                      // QHigh to QExcellent
	Excellent                 // QExcellent and above
)

var categoryNames = [...]string{"Poor", "Low", "Medium", "High", "Excellent"}

func (c Category) String() string {
	if c < Poor || c > Excellent {
		return "Unknown"
	}
	return categoryNames[c]
}

// categoryFloors lists the lowest mean score of each category, best first.
var categoryFloors = [...]struct {
	floor    int
	category Category
}{
	{QExcellent, Excellent},
	{QHigh, High},
	{QMedium, Medium},
	{QLow, Low},
}

// errorProbability[q] is 10^(-q/10), the base-call error probability of
// Phred score q.
var errorProbability = func() (p [PhredMax + 1]float64) {
	for q := range p {
		p[q] = math.Pow(10, -float64(q)/10)
	}
	return p
}()

// EmptyScoresError is returned when a quality string is empty.
type EmptyScoresError struct{}

func (e *EmptyScoresError) Error() string {
	return "quality scores cannot be empty"
}

// InvalidEncodingError is returned when a quality character is outside the
// Phred+33 range.
type InvalidEncodingError struct {
	Position int
	Char     byte
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding character %q at position %d", e.Char, e.Position)
}

// Scores holds the decoded quality of one read. Values are never empty.
type Scores struct {
	Values []int
}

// FromPhred33 decodes a Phred+33 quality string: Q = ord(char) - 33.
func FromPhred33(encoded string) (*Scores, error) {
	if len(encoded) == 0 {
		return nil, &EmptyScoresError{}
	}

	values := make([]int, len(encoded))
	for i := 0; i < len(encoded); i++ {
		q := int(encoded[i]) - Phred33Offset
		if q < PhredMin || q > PhredMax {
			return nil, &InvalidEncodingError{Position: i, Char: encoded[i]}
		}
		values[i] = q
	}

	return &Scores{Values: values}, nil
}

// Len returns the number of bases scored.
func (s *Scores) Len() int {
	return len(s.Values)
}

// Average returns the mean score.
func (s *Scores) Average() float64 {
	sum := 0
	for _, q := range s.Values {
		sum += q
	}
	return float64(sum) / float64(len(s.Values))
}

// Range returns the lowest and highest score.
func (s *Scores) Range() (lo, hi int) {
	lo, hi = PhredMax, PhredMin
	for _, q := range s.Values {
		lo = min(lo, q)
		hi = max(hi, q)
	}
	return lo, hi
}

// CountAtOrAbove returns the number of bases scoring at least q.
func (s *Scores) CountAtOrAbove(q int) int {
	n := 0
	for _, v := range s.Values {
		if v >= q {
			n++
		}
	}
	return n
}

// Categorize buckets the read by its mean score.
func (s *Scores) Categorize() Category {
	avg := s.Average()
	for _, f := range categoryFloors {
		if avg >= float64(f.floor) {
			return f.category
		}
	}
	return Poor
}

// ExpectedErrors returns the expected number of miscalled bases, the sum
// of the per-base error probabilities.
func (s *Scores) ExpectedErrors() float64 {
	sum := 0.0
	for _, q := range s.Values {
		sum += errorProbability[q]
	}
	return sum
}
