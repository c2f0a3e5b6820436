package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aria-lang/seqstat-go/internal/sequence"
)

// GCHistogram bins records by GC percentage.
type GCHistogram struct {
	Bins    []int   `json:"bins"`
	BinSize float64 `json:"bin_size"` // in percent
	NumBins int     `json:"num_bins"`
}

// NewGCHistogram creates a GC content histogram over records.
func NewGCHistogram(records []sequence.Record, numBins int) (*GCHistogram, error) {
	if len(records) == 0 {
		return nil, &EmptyInputError{}
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}

	binSize := 100.0 / float64(numBins)
	bins := make([]int, numBins)

	for _, r := range records {
		binIndex := int(r.Common().GCPercent.Float() / binSize)
		if binIndex >= numBins {
			binIndex = numBins - 1
		}
		bins[binIndex]++
	}

	return &GCHistogram{
		Bins:    bins,
		BinSize: binSize,
		NumBins: numBins,
	}, nil
}

// ModeBin returns the GC percentage range of the fullest bin. Ties go to
// the lowest range.
func (h *GCHistogram) ModeBin() (float64, float64) {
	start := float64(fullestBin(h.Bins)) * h.BinSize
	return start, start + h.BinSize
}

// String renders the histogram with the mode on the first line and one
// row per bin, bars scaled to the fullest bin.
func (h *GCHistogram) String() string {
	var sb strings.Builder
	lo, hi := h.ModeBin()
	fmt.Fprintf(&sb, "Mode: %s-%s%%\n", formatBound(lo), formatBound(hi))
	for i, n := range h.Bins {
		label := fmt.Sprintf("%s-%s%%", formatBound(float64(i)*h.BinSize), formatBound(float64(i+1)*h.BinSize))
		writeRow(&sb, label, n, h.Bins)
	}
	return sb.String()
}

// LengthHistogram bins records by sequence length.
type LengthHistogram struct {
	Bins      []int `json:"bins"`
	MinLength int   `json:"min_length"`
	MaxLength int   `json:"max_length"`
	BinWidth  int   `json:"bin_width"`
	NumBins   int   `json:"num_bins"`
}

// NewLengthHistogram creates a length histogram over records.
func NewLengthHistogram(records []sequence.Record, numBins int) (*LengthHistogram, error) {
	if len(records) == 0 {
		return nil, &EmptyInputError{}
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}

	minLen, maxLen := records[0].Len(), records[0].Len()
	for _, r := range records {
		if l := r.Len(); l < minLen {
			minLen = l
		} else if l > maxLen {
			maxLen = l
		}
	}

	binWidth := (maxLen - minLen) / numBins
	if binWidth < 1 {
		binWidth = 1
	}

	bins := make([]int, numBins)
	for _, r := range records {
		binIndex := (r.Len() - minLen) / binWidth
		if binIndex >= numBins {
			binIndex = numBins - 1
		}
		bins[binIndex]++
	}

	return &LengthHistogram{
		Bins:      bins,
		MinLength: minLen,
		MaxLength: maxLen,
		BinWidth:  binWidth,
		NumBins:   numBins,
	}, nil
}

// String renders one row per bin, labeled with the inclusive length range.
// The last bin also holds lengths beyond its nominal range.
func (h *LengthHistogram) String() string {
	var sb strings.Builder
	for i, n := range h.Bins {
		lo := h.MinLength + i*h.BinWidth
		hi := lo + h.BinWidth - 1
		if i == len(h.Bins)-1 {
			hi = max(hi, h.MaxLength)
		}
		writeRow(&sb, fmt.Sprintf("%d-%d", lo, hi), n, h.Bins)
	}
	return sb.String()
}

// BarWidth is the bar length of the fullest histogram bin.
const BarWidth = 40

func writeRow(sb *strings.Builder, label string, n int, bins []int) {
	fmt.Fprintf(sb, "%12s %6d", label, n)
	if peak := bins[fullestBin(bins)]; n > 0 {
		sb.WriteByte(' ')
		sb.WriteString(strings.Repeat("#", max(1, n*BarWidth/peak)))
	}
	sb.WriteByte('\n')
}

func fullestBin(bins []int) int {
	best := 0
	for i, n := range bins {
		if n > bins[best] {
			best = i
		}
	}
	return best
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
