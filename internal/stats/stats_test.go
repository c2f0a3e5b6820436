package stats

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/aria-lang/seqstat-go/internal/composition"
	"github.com/aria-lang/seqstat-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateSeq(length int) string {
	bases := []byte{'A', 'T', 'G', 'C'}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = bases[i%4]
	}
	return string(result)
}

func collectionOf(lengths ...int) *sequence.Collection {
	c := sequence.NewCollection(sequence.Fasta)
	for i, l := range lengths {
		c.Add(sequence.NewFasta(string(rune('a'+i%26)), generateSeq(l)))
	}
	return c
}

func TestComputeLengthStatisticsTwoRecords(t *testing.T) {
	c := sequence.NewCollection(sequence.Fasta)
	c.Add(sequence.NewFasta("r1", "ACGT"))
	c.Add(sequence.NewFasta("r2", "GGCC"))

	ls, err := ComputeLengthStatistics(c)
	require.NoError(t, err)

	assert.Equal(t, LengthStatistics{Min: 4, Max: 4, Mean: 4, Median: 4}, ls)
	assert.Equal(t, 4, N50(c))
}

func TestComputeLengthStatisticsEmpty(t *testing.T) {
	c := sequence.NewCollection(sequence.Fastq)

	_, err := ComputeLengthStatistics(c)
	require.Error(t, err)
	assert.IsType(t, &EmptyInputError{}, err)

	_, err = Summarize(c)
	assert.IsType(t, &EmptyInputError{}, err)

	assert.Equal(t, 0, N50(c))
	assert.Equal(t, 0, Median(nil))
}

func TestMedianEvenCountTakesUpperMiddle(t *testing.T) {
	c := collectionOf(40, 10, 30, 20)

	ls, err := ComputeLengthStatistics(c)
	require.NoError(t, err)

	assert.Equal(t, 30, ls.Median)
	assert.Equal(t, 10, ls.Min)
	assert.Equal(t, 40, ls.Max)
	assert.Equal(t, 25, ls.Mean)
}

func TestMeanIsFloor(t *testing.T) {
	ls, err := ComputeLengthStatistics(collectionOf(1, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, ls.Mean)
}

func TestMedianMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	tests := []struct {
		name    string
		lengths func() []int
	}{
		{"single", func() []int { return []int{7} }},
		{"all equal", func() []int { return []int{150, 150, 150, 150, 150, 150} }},
		{"ascending", func() []int { return []int{1, 2, 3, 4, 5, 6, 7, 8, 9} }},
		{"descending", func() []int { return []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0} }},
		{"random", func() []int {
			out := make([]int, 501)
			for i := range out {
				out[i] = 1 + rng.Intn(60)
			}
			return out
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lengths := tt.lengths()
			records := make([]sequence.Record, len(lengths))
			for i, l := range lengths {
				records[i] = sequence.NewFasta("r", strings.Repeat("A", l))
			}

			sorted := append([]int(nil), lengths...)
			sort.Ints(sorted)

			got := Median(records)
			assert.Equal(t, sorted[len(sorted)/2], got)

			k := len(records) / 2
			for i := 0; i < k; i++ {
				assert.LessOrEqual(t, records[i].Len(), got)
			}
			for i := k + 1; i < len(records); i++ {
				assert.GreaterOrEqual(t, records[i].Len(), got)
			}
		})
	}
}

func TestIncrementalExtremaMatchScan(t *testing.T) {
	c := collectionOf(12, 3, 99, 45, 3, 99)

	ls, err := ComputeLengthStatistics(c)
	require.NoError(t, err)

	assert.Equal(t, c.MinLength(), ls.Min)
	assert.Equal(t, c.MaxLength(), ls.Max)
}

func TestLengthOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		n := 1 + rng.Intn(40)
		lengths := make([]int, n)
		for i := range lengths {
			lengths[i] = 1 + rng.Intn(1000)
		}

		ls, err := ComputeLengthStatistics(collectionOf(lengths...))
		require.NoError(t, err)

		assert.LessOrEqual(t, ls.Min, ls.Mean)
		assert.LessOrEqual(t, ls.Mean, ls.Max)
		assert.LessOrEqual(t, ls.Min, ls.Median)
		assert.LessOrEqual(t, ls.Median, ls.Max)
	}
}

func TestN50Calculation(t *testing.T) {
	// Total = 300, half = 150; 100 + 80 >= 150
	c := collectionOf(20, 100, 60, 80, 40)

	assert.Equal(t, 80, N50(c))

	// Records are left sorted longest first.
	for i := 1; i < c.Len(); i++ {
		assert.GreaterOrEqual(t, c.Records[i-1].Len(), c.Records[i].Len())
	}
}

func TestN50Threshold(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 20; round++ {
		n := 1 + rng.Intn(30)
		lengths := make([]int, n)
		for i := range lengths {
			lengths[i] = 2 + rng.Intn(500)
		}
		c := collectionOf(lengths...)
		half := c.TotalNucleotides() / 2

		v := N50(c)
		require.Greater(t, v, 0)

		// Find the prefix that first reaches the threshold.
		running, idx := 0, -1
		for i, r := range c.Records {
			running += r.Len()
			if running >= half {
				idx = i
				break
			}
		}
		require.GreaterOrEqual(t, idx, 0)
		assert.Equal(t, v, c.Records[idx].Len())
		assert.GreaterOrEqual(t, running, half)
		assert.Less(t, running-c.Records[idx].Len(), half)
	}
}

func TestSummarizeFasta(t *testing.T) {
	c := sequence.NewCollection(sequence.Fasta)
	c.Add(sequence.NewFasta("r1", "ACGT"))
	c.Add(sequence.NewFasta("r2", "GGCC"))
	c.Dropped.Filtered = 3

	s, err := Summarize(c)
	require.NoError(t, err)

	assert.Equal(t, "FASTA", s.Format)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 8, s.TotalNucleotides)
	assert.Equal(t, 6, s.GlobalGCCount)
	assert.Equal(t, composition.Percent(75000), s.GlobalGCPercent)
	assert.Equal(t, LengthStatistics{Min: 4, Max: 4, Mean: 4, Median: 4}, s.Lengths)
	assert.Equal(t, 4, s.N50)
	assert.Equal(t, 6, s.Bases.G+s.Bases.C)
	assert.Equal(t, 3, s.Dropped.Filtered)
	assert.Nil(t, s.Quality)
	assert.Contains(t, s.String(), "N50: 4")
	assert.NotContains(t, s.String(), "QualitySummary")
}

func TestSummarizeFastq(t *testing.T) {
	c := sequence.NewCollection(sequence.Fastq)
	c.Add(sequence.NewFastq("r1", "ACGT", "IIII"))
	c.Add(sequence.NewFastq("r2", "AC", "!"))

	s, err := Summarize(c)
	require.NoError(t, err)

	require.NotNil(t, s.Quality)
	assert.Equal(t, 2, s.Quality.Reads)
	assert.Equal(t, 1, s.Quality.Mismatched)
	assert.Contains(t, s.String(), "QualitySummary {")
}

func TestGCHistogram(t *testing.T) {
	records := []sequence.Record{
		sequence.NewFasta("a", "AAAA"),     // 0%
		sequence.NewFasta("b", "ATGC"),     // 50%
		sequence.NewFasta("c", "GGCC"),     // 100%
		sequence.NewFasta("d", "ATATATGC"), // 25%
	}

	hist, err := NewGCHistogram(records, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, hist.NumBins)
	assert.InDelta(t, 10.0, hist.BinSize, 0.0001)
	assert.Equal(t, []int{1, 0, 1, 0, 0, 1, 0, 0, 0, 1}, hist.Bins)

	start, end := hist.ModeBin()
	assert.InDelta(t, 0.0, start, 0.0001)
	assert.InDelta(t, 10.0, end, 0.0001)

	bar := strings.Repeat("#", BarWidth)
	out := hist.String()
	assert.True(t, strings.HasPrefix(out, "Mode: 0-10%\n"))
	assert.Contains(t, out, "       0-10%      1 "+bar+"\n")
	assert.Contains(t, out, "      10-20%      0\n")
	assert.Contains(t, out, "     90-100%      1 "+bar+"\n")
	assert.Equal(t, 11, strings.Count(out, "\n"))
}

func TestLengthHistogram(t *testing.T) {
	records := []sequence.Record{
		sequence.NewFasta("a", generateSeq(4)),
		sequence.NewFasta("b", generateSeq(8)),
		sequence.NewFasta("c", generateSeq(16)),
	}

	hist, err := NewLengthHistogram(records, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, hist.NumBins)
	assert.Equal(t, 4, hist.MinLength)
	assert.Equal(t, 16, hist.MaxLength)
	assert.Equal(t, 2, hist.BinWidth)
	assert.Equal(t, []int{1, 0, 1, 0, 1}, hist.Bins)

	bar := strings.Repeat("#", BarWidth)
	assert.Equal(t,
		"         4-5      1 "+bar+"\n"+
			"         6-7      0\n"+
			"         8-9      1 "+bar+"\n"+
			"       10-11      0\n"+
			"       12-16      1 "+bar+"\n",
		hist.String())
}

func TestHistogramBarsScaleToPeak(t *testing.T) {
	records := make([]sequence.Record, 0, 11)
	for i := 0; i < 10; i++ {
		records = append(records, sequence.NewFasta("gc", "GGGG"))
	}
	records = append(records, sequence.NewFasta("at", "AAAA"))

	hist, err := NewGCHistogram(records, 4)
	require.NoError(t, err)

	start, end := hist.ModeBin()
	assert.InDelta(t, 75.0, start, 0.0001)
	assert.InDelta(t, 100.0, end, 0.0001)

	out := hist.String()
	assert.Contains(t, out, "Mode: 75-100%\n")
	assert.Contains(t, out, "       0-25%      1 "+strings.Repeat("#", BarWidth/10)+"\n")
	assert.Contains(t, out, "     75-100%     10 "+strings.Repeat("#", BarWidth)+"\n")
}

func TestEmptyHistograms(t *testing.T) {
	_, err := NewGCHistogram(nil, 10)
	require.Error(t, err)

	_, err = NewLengthHistogram(nil, 10)
	require.Error(t, err)

	_, err = NewLengthHistogram([]sequence.Record{sequence.NewFasta("a", "A")}, 0)
	require.Error(t, err)
}

func BenchmarkSummarize(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	lengths := make([]int, 10000)
	for i := range lengths {
		lengths[i] = 50 + rng.Intn(250)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := collectionOf(lengths...)
		b.StartTimer()
		_, _ = Summarize(c)
	}
}
