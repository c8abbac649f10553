// Package prefilter finds candidate match positions from extracted prefix
// literals before the backtracking matcher runs.
//
// The builder picks the cheapest searcher for the literal set:
//   - one byte → memchr
//   - two or three bytes → memchr2 / memchr3
//   - exactly the digits → DigitPrefilter
//   - any other set of single bytes → byte table scan
//   - one multi-byte literal → memmem
//   - several multi-byte literals → Aho-Corasick
//
// Example usage:
//
//	prog := syntax.MustCompile(`[0-9]+\.[0-9]+`)
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(prog)
//	pf := prefilter.NewBuilder(prefixes).Build()
//	pos := pf.Find([]byte("version 1.25"), 0) // 8
package prefilter

import (
	"github.com/duarterr/miniregex/internal/simd"
	"github.com/duarterr/miniregex/literal"
)

// Prefilter quickly finds positions where a match may start.
type Prefilter interface {
	// Find returns the first candidate position at or after start, or -1.
	// Every position where the program matches is a candidate; the
	// converse only holds when IsComplete is true.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is always a match, so the
	// matcher does not need to confirm it.
	IsComplete() bool

	// LiteralLen returns the length of the literals searched for, or 0 when
	// the prefilter does not search for fixed strings.
	LiteralLen() int

	// HeapBytes returns the approximate heap memory held by the prefilter.
	HeapBytes() int
}

// Builder selects a Prefilter for a set of prefix literals.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a builder for prefixes. The sequence is not modified.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build returns the prefilter for the literals, or nil when they cannot
// filter anything (no literals, or an empty literal).
func (b *Builder) Build() Prefilter {
	if b.prefixes.IsEmpty() || b.prefixes.MinLen() == 0 {
		return nil
	}

	// Literals of different lengths are cut to the shortest so a
	// multi-pattern search reports the leftmost start first.
	seq := b.prefixes.Clone()
	seq.TruncateTo(seq.MinLen())
	complete := seq.AllComplete()

	if seq.MinLen() == 1 {
		return selectByteSearch(seq.Literals(), complete)
	}
	if seq.Len() == 1 {
		return newMemmemPrefilter(seq.Get(0).Bytes, complete)
	}
	if pf := newAhoCorasickPrefilter(seq.Literals(), complete); pf != nil {
		return pf
	}

	// Automaton construction failed: fall back to the set of first bytes.
	seq.TruncateTo(1)
	return selectByteSearch(seq.Literals(), false)
}

// selectByteSearch picks a searcher for a set of distinct single bytes.
func selectByteSearch(lits [][]byte, complete bool) Prefilter {
	switch len(lits) {
	case 1:
		return newMemchrPrefilter(lits[0][0], complete)
	case 2:
		return &memchr2Prefilter{n1: lits[0][0], n2: lits[1][0], complete: complete}
	case 3:
		return &memchr3Prefilter{n1: lits[0][0], n2: lits[1][0], n3: lits[2][0], complete: complete}
	}

	set := new([256]bool)
	for _, lit := range lits {
		set[lit[0]] = true
	}
	if isDigitSet(set) {
		return NewDigitPrefilter(complete)
	}
	return NewByteSetPrefilter(set, complete)
}

func isDigitSet(set *[256]bool) bool {
	for c := 0; c < 256; c++ {
		if set[c] != (c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// memchrPrefilter searches for a single byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	pos := simd.Memchr(haystack[start:], p.needle)
	if pos < 0 {
		return -1
	}
	return start + pos
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }
func (p *memchrPrefilter) LiteralLen() int  { return 1 }
func (p *memchrPrefilter) HeapBytes() int   { return 0 }

type memchr2Prefilter struct {
	n1, n2   byte
	complete bool
}

func (p *memchr2Prefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	pos := simd.Memchr2(haystack[start:], p.n1, p.n2)
	if pos < 0 {
		return -1
	}
	return start + pos
}

func (p *memchr2Prefilter) IsComplete() bool { return p.complete }
func (p *memchr2Prefilter) LiteralLen() int  { return 1 }
func (p *memchr2Prefilter) HeapBytes() int   { return 0 }

type memchr3Prefilter struct {
	n1, n2, n3 byte
	complete   bool
}

func (p *memchr3Prefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	pos := simd.Memchr3(haystack[start:], p.n1, p.n2, p.n3)
	if pos < 0 {
		return -1
	}
	return start + pos
}

func (p *memchr3Prefilter) IsComplete() bool { return p.complete }
func (p *memchr3Prefilter) LiteralLen() int  { return 1 }
func (p *memchr3Prefilter) HeapBytes() int   { return 0 }

// memmemPrefilter searches for one multi-byte literal.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	return &memmemPrefilter{needle: needle, complete: complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	pos := simd.Memmem(haystack[start:], p.needle)
	if pos < 0 {
		return -1
	}
	return start + pos
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }
func (p *memmemPrefilter) LiteralLen() int  { return len(p.needle) }
func (p *memmemPrefilter) HeapBytes() int   { return len(p.needle) }
