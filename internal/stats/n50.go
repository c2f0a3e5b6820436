package stats

import (
	"sort"

	"github.com/aria-lang/seqstat-go/internal/sequence"
)

// N50 sorts c.Records by length, longest first, and returns the length of
// the first record at which the running length total reaches half of the
// collection's total nucleotides (floor). It returns 0 when no record
// reaches the threshold, which includes the empty collection.
//
// The sort is left in place: c.Records is in descending length order
// afterwards.
func N50(c *sequence.Collection) int {
	sort.Slice(c.Records, func(i, j int) bool {
		return c.Records[i].Len() > c.Records[j].Len()
	})

	half := c.TotalNucleotides() / 2
	running := 0
	for _, r := range c.Records {
		running += r.Len()
		if running >= half {
			return r.Len()
		}
	}
	return 0
}
