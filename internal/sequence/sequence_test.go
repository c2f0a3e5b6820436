package sequence

import (
	"math"
	"strings"
	"testing"

	"github.com/aria-lang/seqstat-go/internal/composition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFasta(t *testing.T) {
	rec := NewFasta("r1", "ACGT")

	assert.Equal(t, "r1", rec.ID)
	assert.Equal(t, "ACGT", rec.Sequence)
	assert.Equal(t, 2, rec.GCCount)
	assert.Equal(t, composition.Percent(50000), rec.GCPercent)
	assert.Equal(t, 4, rec.Len())
	assert.Equal(t, Fasta, rec.Kind())
}

func TestNewFastq(t *testing.T) {
	rec := NewFastq("read/1", "ggcA", "IIII")

	assert.Equal(t, 3, rec.GCCount)
	assert.Equal(t, composition.Percent(75000), rec.GCPercent)
	assert.Equal(t, Fastq, rec.Kind())
	assert.False(t, rec.QualityMismatch())

	short := NewFastq("read/2", "ACGT", "II")
	assert.True(t, short.QualityMismatch())
}

func TestRecordSumType(t *testing.T) {
	records := []Record{
		NewFasta("a", "AAAA"),
		NewFastq("b", "CC", "!!"),
	}

	var kinds []Kind
	for _, r := range records {
		switch rec := r.(type) {
		case *FastaRecord:
			kinds = append(kinds, rec.Kind())
		case *FastqRecord:
			assert.Equal(t, "!!", rec.Quality)
			kinds = append(kinds, rec.Kind())
		default:
			t.Fatalf("unexpected record type %T", r)
		}
	}

	assert.Equal(t, []Kind{Fasta, Fastq}, kinds)
	assert.Equal(t, 4, records[0].Len())
	assert.Equal(t, "b", records[1].Common().ID)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "FASTA", Fasta.String())
	assert.Equal(t, "FASTQ", Fastq.String())
	assert.Equal(t, "Unknown", Kind(9).String())
}

func TestCollectionAdd(t *testing.T) {
	c := NewCollection(Fasta)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, math.MaxInt, c.MinLength())
	assert.Equal(t, math.MinInt, c.MaxLength())

	c.Add(NewFasta("r1", "ACGT"))
	c.Add(NewFasta("r2", "GGCCGG"))
	c.Add(NewFasta("r3", "AT"))

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "r1", c.Records[0].Common().ID)
	assert.Equal(t, "r3", c.Records[2].Common().ID)
	assert.Equal(t, 8, c.GlobalGCCount())
	assert.Equal(t, 12, c.TotalNucleotides())
	assert.Equal(t, 2, c.MinLength())
	assert.Equal(t, 6, c.MaxLength())
	assert.Equal(t, composition.Percent(66666), c.Tally().Percent())
}

func TestDroppedTotal(t *testing.T) {
	d := Dropped{Filtered: 2, Malformed: 1, Empty: 3}
	assert.Equal(t, 6, d.Total())
}

func TestToFASTA(t *testing.T) {
	rec := NewFasta("chr1 test", strings.Repeat("A", 100))
	out := rec.ToFASTA()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ">chr1 test", lines[0])
	assert.Len(t, lines[1], LineWidth)
	assert.Len(t, lines[2], 20)
}

func TestToFASTQ(t *testing.T) {
	rec := NewFastq("r1", "ACGT", "IIII")
	assert.Equal(t, "@r1\nACGT\n+\nIIII\n", rec.ToFASTQ())
	assert.Equal(t, ">r1\nACGT\n", rec.ToFASTA())
}

func TestToFASTANeverStartsLineWithMarker(t *testing.T) {
	tests := []struct {
		name  string
		seq   string
		lines []string
	}{
		{
			name:  "marker at wrap point",
			seq:   strings.Repeat("A", LineWidth) + ">B",
			lines: []string{strings.Repeat("A", LineWidth) + ">", "B"},
		},
		{
			name:  "run of markers",
			seq:   strings.Repeat("C", LineWidth) + ">>>G",
			lines: []string{strings.Repeat("C", LineWidth) + ">>>", "G"},
		},
		{
			name:  "trailing marker",
			seq:   strings.Repeat("T", LineWidth) + ">",
			lines: []string{strings.Repeat("T", LineWidth) + ">"},
		},
		{
			name:  "exact multiple",
			seq:   strings.Repeat("G", 2*LineWidth),
			lines: []string{strings.Repeat("G", LineWidth), strings.Repeat("G", LineWidth)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewFasta("r1", tt.seq).ToFASTA()
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			assert.Equal(t, append([]string{">r1"}, tt.lines...), lines)
		})
	}
}
