package sequence

import (
	"math"

	"github.com/aria-lang/seqstat-go/internal/composition"
)

// Dropped counts records that were read but not kept.
type Dropped struct {
	// Filtered records fell outside the length filter.
	Filtered int `json:"filtered"`
	// Malformed FASTQ records lacked a '+' separator or quality line.
	Malformed int `json:"malformed"`
	// Empty records had a header but no sequence.
	Empty int `json:"empty"`
}

// Total returns the number of dropped records.
func (d Dropped) Total() int {
	return d.Filtered + d.Malformed + d.Empty
}

// Collection owns the records of one parse, in input order, along with
// the run-level GC and nucleotide totals.
//
// Statistics in package stats may reorder Records in place. Callers that
// need input order after computing a median or N50 must copy Records first.
type Collection struct {
	Kind    Kind
	Records []Record
	Dropped Dropped

	tally  composition.Tally
	minLen int
	maxLen int
}

// NewCollection returns an empty collection for records of kind k.
func NewCollection(k Kind) *Collection {
	return &Collection{
		Kind:    k,
		Records: make([]Record, 0),
		minLen:  math.MaxInt,
		maxLen:  math.MinInt,
	}
}

// Add appends r and folds its counts into the running totals.
func (c *Collection) Add(r Record) {
	e := r.Common()
	c.Records = append(c.Records, r)
	c.tally.Add(e.GCCount, e.Len())
	if n := e.Len(); n < c.minLen {
		c.minLen = n
	}
	if n := e.Len(); n > c.maxLen {
		c.maxLen = n
	}
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.Records)
}

// GlobalGCCount returns the summed GC count of all records.
func (c *Collection) GlobalGCCount() int {
	return c.tally.GCCount
}

// TotalNucleotides returns the summed sequence length of all records.
func (c *Collection) TotalNucleotides() int {
	return c.tally.Nucleotides
}

// Tally returns the run-level GC totals.
func (c *Collection) Tally() composition.Tally {
	return c.tally
}

// MinLength returns the shortest sequence length seen by Add, or
// math.MaxInt when the collection is empty.
func (c *Collection) MinLength() int {
	return c.minLen
}

// MaxLength returns the longest sequence length seen by Add, or
// math.MinInt when the collection is empty.
func (c *Collection) MaxLength() int {
	return c.maxLen
}
