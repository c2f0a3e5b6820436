package parser

import (
	"path/filepath"
	"strings"

	"github.com/aria-lang/seqstat-go/internal/sequence"
)

// ParseFormat resolves a format name: "fasta"/"fa" or "fastq"/"fq",
// case-insensitive.
func ParseFormat(name string) (sequence.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fasta", "fa":
		return sequence.Fasta, nil
	case "fastq", "fq":
		return sequence.Fastq, nil
	default:
		return 0, &UnknownFormatError{Name: name}
	}
}

// DetectFormat infers the format from a file name extension.
func DetectFormat(filename string) (sequence.Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".fastq", ".fq":
		return sequence.Fastq, nil
	case ".fasta", ".fa", ".fna", ".fas":
		return sequence.Fasta, nil
	default:
		return 0, &UnknownFormatError{Name: filepath.Base(filename)}
	}
}

// Parse dispatches to ParseFasta or ParseFastq.
func Parse(kind sequence.Kind, src LineSource, filter Filter) (*sequence.Collection, error) {
	switch kind {
	case sequence.Fasta:
		return ParseFasta(src, filter)
	case sequence.Fastq:
		return ParseFastq(src, filter)
	default:
		return nil, &UnknownFormatError{Name: kind.String()}
	}
}
