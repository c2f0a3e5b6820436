package quality

import (
	"fmt"

	"github.com/aria-lang/seqstat-go/internal/sequence"
)

// Distribution counts reads per quality category.
type Distribution struct {
	Poor      int `json:"poor"`
	Low       int `json:"low"`
	Medium    int `json:"medium"`
	High      int `json:"high"`
	Excellent int `json:"excellent"`
	Total     int `json:"total"`
}

// Add counts one read of category c.
func (d *Distribution) Add(c Category) {
	d.Total++
	switch c {
	case Poor:
		d.Poor++
	case Low:
		d.Low++
	case Medium:
		d.Medium++
	case High:
		d.High++
	case Excellent:
		d.Excellent++
	}
}

// AcceptableRatio returns proportion of reads at or above medium quality.
func (d *Distribution) AcceptableRatio() float64 {
	if d.Total == 0 {
		return 0.0
	}
	return float64(d.Medium+d.High+d.Excellent) / float64(d.Total)
}

// Summary describes the quality strings of a set of FASTQ reads.
//
// Reads whose quality string is empty or holds characters outside Phred+33
// are counted in Undecodable and contribute to nothing else except Reads
// and Mismatched.
type Summary struct {
	Reads int `json:"reads"`
	// Mismatched reads have a quality string whose length differs from
	// the sequence length.
	Mismatched  int `json:"mismatched"`
	Undecodable int `json:"undecodable"`

	MeanQuality        float64 `json:"mean_quality"`
	MeanExpectedErrors float64 `json:"mean_expected_errors"`
	HighQualityReads   int     `json:"high_quality_reads"`

	// Bases is the number of decoded quality scores; Q30Bases of them are
	// at or above QHigh.
	Bases    int     `json:"bases"`
	Q30Bases int     `json:"q30_bases"`
	Q30Ratio float64 `json:"q30_ratio"`
	// MinScore and MaxScore bound every decoded score.
	MinScore int `json:"min_score"`
	MaxScore int `json:"max_score"`

	Distribution Distribution `json:"distribution"`
}

// Summarize decodes the quality of every FASTQ record in records. Records
// of other kinds are skipped.
func Summarize(records []sequence.Record) *Summary {
	s := &Summary{MinScore: PhredMax, MaxScore: PhredMin}
	var sumMean, sumEE float64

	for _, r := range records {
		rec, ok := r.(*sequence.FastqRecord)
		if !ok {
			continue
		}
		s.Reads++
		if rec.QualityMismatch() {
			s.Mismatched++
		}

		scores, err := FromPhred33(rec.Quality)
		if err != nil {
			s.Undecodable++
			continue
		}

		mean := scores.Average()
		sumMean += mean
		sumEE += scores.ExpectedErrors()
		if mean >= QHigh {
			s.HighQualityReads++
		}

		s.Bases += scores.Len()
		s.Q30Bases += scores.CountAtOrAbove(QHigh)
		lo, hi := scores.Range()
		s.MinScore = min(s.MinScore, lo)
		s.MaxScore = max(s.MaxScore, hi)

		s.Distribution.Add(scores.Categorize())
	}

	decoded := s.Reads - s.Undecodable
	if decoded == 0 {
		s.MinScore, s.MaxScore = 0, 0
		return s
	}
	s.MeanQuality = sumMean / float64(decoded)
	s.MeanExpectedErrors = sumEE / float64(decoded)
	s.Q30Ratio = float64(s.Q30Bases) / float64(s.Bases)
	return s
}

func (s *Summary) String() string {
	return fmt.Sprintf(`QualitySummary {
  reads: %d
  mean quality: %.1f
  score range: Q%d - Q%d
  Q30 bases: %.2f%%
  mean expected errors: %.3f
  high quality reads: %d
  length mismatches: %d
  undecodable: %d
}`, s.Reads, s.MeanQuality, s.MinScore, s.MaxScore, s.Q30Ratio*100,
		s.MeanExpectedErrors, s.HighQualityReads, s.Mismatched, s.Undecodable)
}
