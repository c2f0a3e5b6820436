package parser

import "fmt"

// IOError is returned when the line source fails to read or a line fails
// to decode. It is fatal to the parse.
type IOError struct {
	Op   string
	Line int
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Op, e.Line, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// InvalidFilterError is returned for a length filter with a negative bound
// or a maximum below the minimum.
type InvalidFilterError struct {
	Min int
	Max int
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid length filter [%d, %d]", e.Min, e.Max)
}

// UnknownFormatError is returned when a format name or file extension is
// not recognized.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("invalid format: %s", e.Name)
}
