package parser

import (
	"strings"

	"github.com/aria-lang/seqstat-go/internal/sequence"
)

// ParseFasta reads multi-line FASTA records from src.
//
// A line starting with '>' opens a record whose id is the trimmed text
// after the marker. Following lines are concatenated verbatim until the
// next header or end of input. Lines before the first header, and records
// whose header has an empty id, are never finalized. Records with an empty
// sequence or a length outside filter are dropped and counted in
// Collection.Dropped.
func ParseFasta(src LineSource, filter Filter) (*sequence.Collection, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	c := sequence.NewCollection(sequence.Fasta)
	r := &lineReader{src: src}

	var (
		id  string
		seq strings.Builder
	)

	finalize := func() {
		if id == "" {
			return
		}
		s := seq.String()
		switch {
		case len(s) == 0:
			c.Dropped.Empty++
		case !filter.Accept(len(s)):
			c.Dropped.Filtered++
		default:
			c.Add(sequence.NewFasta(id, s))
		}
	}

	for {
		line, ok := r.next()
		if !ok {
			break
		}
		if strings.HasPrefix(line, ">") {
			finalize()
			id = strings.TrimSpace(line[1:])
			seq.Reset()
			continue
		}
		seq.WriteString(line)
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	// The last record has no following header.
	finalize()

	return c, nil
}
