// Package composition provides nucleotide composition counting.
//
// GC content is stored as a fixed-point percentage scaled by 1000 so that
// values compare exactly in tests and reports. A sequence with 1 G/C out of
// 3 bases has a Percent of 33333, displayed as "33.333%".
package composition

import (
	"strconv"
)

// PercentScale is the fixed-point scale applied to whole percentages.
const PercentScale = 1000

// Percent is a GC percentage scaled by PercentScale.
type Percent uint32

// NewPercent returns gc/length as a scaled percentage, truncated toward zero.
// A zero length yields 0.
func NewPercent(gc, length int) Percent {
	if length <= 0 || gc <= 0 {
		return 0
	}
	return Percent(uint64(gc) * 100 * PercentScale / uint64(length))
}

// Float returns the percentage as a float (e.g. 33.333).
func (p Percent) Float() float64 {
	return float64(p) / PercentScale
}

// String formats the percentage in its shortest form with a % suffix.
func (p Percent) String() string {
	return strconv.FormatFloat(float64(float32(p)/PercentScale), 'f', -1, 32) + "%"
}

// IsGC reports whether b is a guanine or cytosine, case-insensitive.
func IsGC(b byte) bool {
	switch b {
	case 'G', 'g', 'C', 'c':
		return true
	}
	return false
}

// CountGC counts G/C characters in seq.
func CountGC(seq string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		if IsGC(seq[i]) {
			n++
		}
	}
	return n
}

// BaseCounts holds per-base counts over one or more sequences.
// Lowercase bases count toward their uppercase bucket; anything outside
// ACGTUN lands in Other.
type BaseCounts struct {
	A     int `json:"a"`
	C     int `json:"c"`
	G     int `json:"g"`
	T     int `json:"t"` // Also counts U for RNA
	N     int `json:"n"`
	Other int `json:"other"`
}

// Add accumulates the bases of seq.
func (bc *BaseCounts) Add(seq string) {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'a':
			bc.A++
		case 'C', 'c':
			bc.C++
		case 'G', 'g':
			bc.G++
		case 'T', 't', 'U', 'u':
			bc.T++
		case 'N', 'n':
			bc.N++
		default:
			bc.Other++
		}
	}
}

// Tally accumulates run-level GC and nucleotide totals.
type Tally struct {
	GCCount     int
	Nucleotides int
}

// Add records one sequence's GC count and length.
func (t *Tally) Add(gc, length int) {
	t.GCCount += gc
	t.Nucleotides += length
}

// Percent returns the aggregate GC percentage.
func (t Tally) Percent() Percent {
	return NewPercent(t.GCCount, t.Nucleotides)
}

// Ratio returns GCCount/Nucleotides as a float, and false when no
// nucleotides were counted.
func (t Tally) Ratio() (float64, bool) {
	if t.Nucleotides == 0 {
		return 0, false
	}
	return float64(t.GCCount) / float64(t.Nucleotides), true
}
