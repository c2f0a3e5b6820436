package parser

import (
	"strings"

	"github.com/aria-lang/seqstat-go/internal/sequence"
)

// ParseFastq reads FASTQ records from src.
//
// A line starting with '@' opens a record whose id is the trimmed text
// after the marker. Sequence lines accumulate until a line exactly equal
// to "+"; the single line after it is the quality string, trimmed. Lines
// outside a record are skipped.
//
// The length filter is checked before the quality line is used, but the
// quality line is always consumed so the next '@' is found at a record
// boundary. A record that reaches end of input without its '+' or quality
// line is dropped and counted as malformed.
func ParseFastq(src LineSource, filter Filter) (*sequence.Collection, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	c := sequence.NewCollection(sequence.Fastq)
	r := &lineReader{src: src}

	var seq strings.Builder

	for {
		line, ok := r.next()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, "@") {
			continue
		}

		id := strings.TrimSpace(line[1:])
		seq.Reset()

		if !readFastqBody(r, c, filter, id, &seq) {
			c.Dropped.Malformed++
		}
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// readFastqBody consumes the sequence, separator and quality lines of one
// record. It returns false if input ended before the quality line.
func readFastqBody(r *lineReader, c *sequence.Collection, filter Filter, id string, seq *strings.Builder) bool {
	for {
		line, ok := r.next()
		if !ok {
			return false
		}
		if line != "+" {
			seq.WriteString(line)
			continue
		}

		qual, ok := r.next()
		if !ok {
			return false
		}

		s := seq.String()
		switch {
		case len(s) == 0:
			c.Dropped.Empty++
		case !filter.Accept(len(s)):
			c.Dropped.Filtered++
		default:
			c.Add(sequence.NewFastq(id, s, strings.TrimSpace(qual)))
		}
		return true
	}
}
