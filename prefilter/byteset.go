package prefilter

import "github.com/duarterr/miniregex/internal/simd"

// ByteSetPrefilter finds any byte of a fixed set, for leading classes too
// large for memchr3 such as [a-z] or \w.
type ByteSetPrefilter struct {
	table    *[256]bool
	complete bool
}

// NewByteSetPrefilter creates a prefilter over set. The table is kept, not
// copied, and must not change afterwards.
func NewByteSetPrefilter(set *[256]bool, complete bool) *ByteSetPrefilter {
	return &ByteSetPrefilter{table: set, complete: complete}
}

// Find returns the index of the first byte of the set at or after start,
// or -1.
func (p *ByteSetPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	pos := simd.MemchrInTable(haystack[start:], p.table)
	if pos < 0 {
		return -1
	}
	return start + pos
}

// IsComplete reports whether one byte of the set is a whole match.
func (p *ByteSetPrefilter) IsComplete() bool { return p.complete }

// LiteralLen returns 1.
func (p *ByteSetPrefilter) LiteralLen() int { return 1 }

// HeapBytes returns the size of the lookup table.
func (p *ByteSetPrefilter) HeapBytes() int { return 256 }
