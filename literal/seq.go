// Package literal extracts the byte strings every match of a program must
// start with.
//
// A prefilter built from those strings can skip text that cannot start a
// match before the backtracking matcher is run at all.
//
// Key concepts:
//   - A Literal is a byte string that may start a match;
//   - A Seq is the set of alternative literals for one program.
package literal

import (
	"bytes"
	"sort"
)

// Literal is a byte string extracted from a program.
//
// Complete reports whether the literal is a whole match: when it is, finding
// the literal is the same as finding a match and no matcher has to confirm.
//
// Example:
//   - Program of "abc" gives Literal{"abc", true}
//   - Program of "ab+c" gives Literal{"ab", false}
type Literal struct {
	// Bytes is the literal byte string.
	Bytes []byte

	// Complete is true when the literal alone proves a match.
	Complete bool
}

// NewLiteral creates a Literal from b and the completeness flag.
//
// Example:
//
//	lit := literal.NewLiteral([]byte("hello"), true)
//	fmt.Printf("%s (complete=%v)\n", lit.Bytes, lit.Complete)
//	// Output: hello (complete=true)
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debugging representation: "literal{bytes, complete=bool}".
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals: every match starts with one of them.
//
// An empty Seq carries no information and must not be used to filter text.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("ac"), true),
//	    literal.NewLiteral([]byte("bc"), true),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from lits.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. It panics if i is out of range.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Literals returns the byte strings of the sequence, in order.
// The returned slices alias the sequence.
func (s *Seq) Literals() [][]byte {
	if s.IsEmpty() {
		return nil
	}
	out := make([][]byte, len(s.literals))
	for i, lit := range s.literals {
		out[i] = lit.Bytes
	}
	return out
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		cloned[i] = Literal{
			Bytes:    append([]byte(nil), lit.Bytes...),
			Complete: lit.Complete,
		}
	}
	return &Seq{literals: cloned}
}

// AllComplete reports whether the sequence is non-empty and every literal
// is complete.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		n = min(n, len(lit.Bytes))
	}
	return n
}

// Dedup sorts the sequence and removes duplicate literals. Two copies of
// the same bytes keep the completeness of either only if both are complete.
func (s *Seq) Dedup() {
	if s.Len() < 2 {
		return
	}
	sort.SliceStable(s.literals, func(i, j int) bool {
		return bytes.Compare(s.literals[i].Bytes, s.literals[j].Bytes) < 0
	})
	out := s.literals[:1]
	for _, lit := range s.literals[1:] {
		last := &out[len(out)-1]
		if bytes.Equal(last.Bytes, lit.Bytes) {
			last.Complete = last.Complete && lit.Complete
			continue
		}
		out = append(out, lit)
	}
	s.literals = out
}

// TruncateTo shortens every literal to at most n bytes and deduplicates
// the result. Truncated literals are no longer complete.
//
// Cutting a set of prefixes to one common length keeps it a valid prefix
// set, and equal lengths let a multi-pattern searcher report the leftmost
// start as its first hit.
func (s *Seq) TruncateTo(n int) {
	if s.IsEmpty() || n < 0 {
		return
	}
	for i := range s.literals {
		if len(s.literals[i].Bytes) > n {
			s.literals[i].Bytes = s.literals[i].Bytes[:n]
			s.literals[i].Complete = false
		}
	}
	s.Dedup()
}
