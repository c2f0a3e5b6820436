// Package report renders analysis results as a text report or JSON.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/aria-lang/seqstat-go/internal/composition"
	"github.com/aria-lang/seqstat-go/internal/parser"
	"github.com/aria-lang/seqstat-go/internal/sequence"
	"github.com/aria-lang/seqstat-go/internal/stats"
)

// Options selects the report sections.
type Options struct {
	InputName          string
	Filter             parser.Filter
	ShowReadStatistics bool
	ShowGCPerSequence  bool
	ShowGCGlobal       bool
	ShowSequences      bool
	ShowN50            bool
	ShowHistograms     bool
}

// All returns options with every section enabled.
func All(inputName string, filter parser.Filter) Options {
	return Options{
		InputName:          inputName,
		Filter:             filter,
		ShowReadStatistics: true,
		ShowGCPerSequence:  true,
		ShowGCGlobal:       true,
		ShowSequences:      true,
		ShowN50:            true,
		ShowHistograms:     true,
	}
}

const (
	headerLengths   = "-------Read Length Statistics-------"
	headerGCPerSeq  = "-------GC Sequence Per Line---------"
	headerGCGlobal  = "-------GC Global Statistics---------"
	headerSequences = "-------All Sequences Shown----------"
	headerN50       = "-----------------N50----------------"
	headerGCHist    = "--------GC Content Histogram--------"
	headerLenHist   = "----------Length Histogram----------"
)

// WriteText writes the text report. records are listed in the order given;
// sum may be nil when no record survived parsing.
func WriteText(w io.Writer, records []sequence.Record, sum *stats.Summary, opts Options) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "File Analyzed: %s\n\n", opts.InputName)

	if opts.Filter.MinLength > 0 {
		fmt.Fprintf(bw, "Minimum Sequence Length : %dnt\n", opts.Filter.MinLength)
	}
	if opts.Filter.Bounded() {
		fmt.Fprintf(bw, "Maximum Sequence Length : %dnt\n\n", opts.Filter.MaxLength)
	}

	if sum == nil {
		fmt.Fprintln(bw, "No records passed the length filter.")
		return bw.Flush()
	}

	if opts.ShowReadStatistics {
		fmt.Fprintln(bw, headerLengths)
		fmt.Fprintf(bw, "Min Length: %dnt\n", sum.Lengths.Min)
		fmt.Fprintf(bw, "Max Length: %dnt\n", sum.Lengths.Max)
		fmt.Fprintf(bw, "Mean Length: %dnt\n", sum.Lengths.Mean)
		fmt.Fprintf(bw, "Median Length: %dnt\n\n", sum.Lengths.Median)
	}

	if opts.ShowGCPerSequence {
		fmt.Fprintln(bw, headerGCPerSeq)
		fmt.Fprintln(bw, "ID : GC_Percent")
		for _, r := range records {
			e := r.Common()
			fmt.Fprintf(bw, "%s : %s\n", e.ID, e.GCPercent)
		}
		fmt.Fprintln(bw)
	}

	if opts.ShowGCGlobal {
		fmt.Fprintln(bw, headerGCGlobal)
		fmt.Fprintf(bw, "Global-GC Count: %d\nTotal nt Count: %d\n", sum.GlobalGCCount, sum.TotalNucleotides)
		fmt.Fprintf(bw, "Global-GC Percentage: %s%%\n\n", globalPercent(sum))
	}

	if opts.ShowSequences {
		fmt.Fprintln(bw, headerSequences)
		for _, r := range records {
			switch rec := r.(type) {
			case *sequence.FastqRecord:
				fmt.Fprintf(bw, "%s : %s : %s\n", rec.ID, rec.Sequence, rec.Quality)
			default:
				e := r.Common()
				fmt.Fprintf(bw, "%s : %s\n", e.ID, e.Sequence)
			}
		}
	}

	if opts.ShowN50 {
		fmt.Fprintf(bw, "\n%s\n", headerN50)
		fmt.Fprintf(bw, "N50 value: %d\n", sum.N50)
	}

	if opts.ShowHistograms && len(records) > 0 {
		gc, err := stats.NewGCHistogram(records, HistogramBins)
		if err != nil {
			return err
		}
		lengths, err := stats.NewLengthHistogram(records, HistogramBins)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "\n%s\n%s", headerGCHist, gc)
		fmt.Fprintf(bw, "\n%s\n%s", headerLenHist, lengths)
	}

	return bw.Flush()
}

// globalPercent formats the unscaled global GC percentage.
func globalPercent(sum *stats.Summary) string {
	tally := composition.Tally{GCCount: sum.GlobalGCCount, Nucleotides: sum.TotalNucleotides}
	ratio, ok := tally.Ratio()
	if !ok {
		return "0"
	}
	return strconv.FormatFloat(ratio*100.0, 'f', -1, 64)
}
