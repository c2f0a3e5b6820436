package parser

// Filter is an inclusive sequence length filter. A zero MaxLength means
// no upper bound, so the zero Filter accepts every length.
type Filter struct {
	MinLength int
	MaxLength int
}

// Validate checks the bounds.
func (f Filter) Validate() error {
	if f.MinLength < 0 || f.MaxLength < 0 || (f.MaxLength != 0 && f.MaxLength < f.MinLength) {
		return &InvalidFilterError{Min: f.MinLength, Max: f.MaxLength}
	}
	return nil
}

// Bounded reports whether the filter has an upper bound.
func (f Filter) Bounded() bool {
	return f.MaxLength != 0
}

// Accept reports whether a sequence of length n passes the filter.
func (f Filter) Accept(n int) bool {
	if n < f.MinLength {
		return false
	}
	return !f.Bounded() || n <= f.MaxLength
}
