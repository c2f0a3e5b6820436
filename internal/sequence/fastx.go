package sequence

import "strings"

// LineWidth is the wrap width used by ToFASTA.
const LineWidth = 80

// ToFASTA returns the record in FASTA format, wrapping the sequence at
// LineWidth columns.
//
// A wrapped line never starts with '>': a line that would is extended past
// the run of '>' characters, so it may exceed LineWidth. A sequence whose
// first character is '>' has no FASTA form that parses back to it.
func (e *Entry) ToFASTA() string {
	var sb strings.Builder
	sb.Grow(len(e.ID) + len(e.Sequence) + len(e.Sequence)/LineWidth + 3)
	sb.WriteByte('>')
	sb.WriteString(e.ID)
	sb.WriteByte('\n')

	seq := e.Sequence
	for len(seq) > 0 {
		end := min(LineWidth, len(seq))
		for end < len(seq) && seq[end] == '>' {
			end++
		}
		sb.WriteString(seq[:end])
		sb.WriteByte('\n')
		seq = seq[end:]
	}

	return sb.String()
}

// ToFASTQ returns the record in four-line FASTQ format.
func (r *FastqRecord) ToFASTQ() string {
	var sb strings.Builder
	sb.Grow(len(r.ID) + len(r.Sequence) + len(r.Quality) + 6)
	sb.WriteByte('@')
	sb.WriteString(r.ID)
	sb.WriteByte('\n')
	sb.WriteString(r.Sequence)
	sb.WriteString("\n+\n")
	sb.WriteString(r.Quality)
	sb.WriteByte('\n')
	return sb.String()
}
