package prefilter

import "github.com/duarterr/miniregex/internal/simd"

// DigitPrefilter finds ASCII digits, for programs whose first instruction
// accepts exactly '0'..'9' (\d, [0-9], \d+ and the like).
//
// The digit scan skips eight non-digit bytes per step, which pays off on
// long runs of text between numbers.
type DigitPrefilter struct {
	complete bool
}

// NewDigitPrefilter creates a digit prefilter. complete is true when a
// single digit is a whole match.
func NewDigitPrefilter(complete bool) *DigitPrefilter {
	return &DigitPrefilter{complete: complete}
}

// Find returns the index of the first digit at or after start, or -1.
func (p *DigitPrefilter) Find(haystack []byte, start int) int {
	return simd.MemchrDigitAt(haystack, start)
}

// IsComplete reports whether a digit alone is a match.
func (p *DigitPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen returns 1: every candidate is one digit.
func (p *DigitPrefilter) LiteralLen() int {
	return 1
}

// HeapBytes returns 0; the prefilter holds no memory.
func (p *DigitPrefilter) HeapBytes() int {
	return 0
}
