package report

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/aria-lang/seqstat-go/internal/sequence"
	"github.com/aria-lang/seqstat-go/internal/stats"
)

// HistogramBins is the bin count used for the JSON histograms.
const HistogramBins = 10

// FilterJSON is the length filter as reported. A nil MaxLength means
// unbounded.
type FilterJSON struct {
	MinLength int  `json:"min_length"`
	MaxLength *int `json:"max_length"`
}

// RecordJSON is one record in the JSON report.
type RecordJSON struct {
	ID        string `json:"id"`
	Length    int    `json:"length"`
	GCCount   int    `json:"gc_count"`
	GCPercent string `json:"gc_percent"`
	Sequence  string `json:"sequence,omitempty"`
	Quality   string `json:"quality,omitempty"`
}

// Document is the JSON report.
type Document struct {
	AnalysisID      string                 `json:"analysis_id"`
	Input           string                 `json:"input"`
	Filter          FilterJSON             `json:"filter"`
	Summary         *stats.Summary         `json:"summary,omitempty"`
	GCHistogram     *stats.GCHistogram     `json:"gc_histogram,omitempty"`
	LengthHistogram *stats.LengthHistogram `json:"length_histogram,omitempty"`
	Records         []RecordJSON           `json:"records,omitempty"`
}

// NewDocument builds the JSON document. Per-record entries are included
// when ShowGCPerSequence or ShowSequences is set; sequences and qualities
// only with ShowSequences.
func NewDocument(records []sequence.Record, sum *stats.Summary, opts Options) *Document {
	doc := &Document{
		AnalysisID: uuid.NewString(),
		Input:      opts.InputName,
		Filter:     FilterJSON{MinLength: opts.Filter.MinLength},
		Summary:    sum,
	}
	if opts.Filter.Bounded() {
		maxLen := opts.Filter.MaxLength
		doc.Filter.MaxLength = &maxLen
	}

	if len(records) > 0 {
		// Errors only occur for empty input or zero bins.
		doc.GCHistogram, _ = stats.NewGCHistogram(records, HistogramBins)
		doc.LengthHistogram, _ = stats.NewLengthHistogram(records, HistogramBins)
	}

	if opts.ShowGCPerSequence || opts.ShowSequences {
		doc.Records = make([]RecordJSON, 0, len(records))
		for _, r := range records {
			e := r.Common()
			rj := RecordJSON{
				ID:        e.ID,
				Length:    e.Len(),
				GCCount:   e.GCCount,
				GCPercent: e.GCPercent.String(),
			}
			if opts.ShowSequences {
				rj.Sequence = e.Sequence
				if fq, ok := r.(*sequence.FastqRecord); ok {
					rj.Quality = fq.Quality
				}
			}
			doc.Records = append(doc.Records, rj)
		}
	}

	return doc
}

// WriteJSON writes the JSON report, indented.
func WriteJSON(w io.Writer, records []sequence.Record, sum *stats.Summary, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(records, sum, opts))
}
