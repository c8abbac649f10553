package prefilter

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/duarterr/miniregex/literal"
	"github.com/duarterr/miniregex/syntax"
)

func prefixes(t *testing.T, pattern string) *literal.Seq {
	t.Helper()
	prog, err := syntax.Compile(pattern, syntax.DefaultLimits())
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return literal.New(literal.DefaultConfig()).ExtractPrefixes(prog)
}

func TestBuilderSelection(t *testing.T) {
	tests := []struct {
		pattern  string
		want     string
		complete bool
		litLen   int
	}{
		{"a+", "*prefilter.memchrPrefilter", false, 1},
		{"a", "*prefilter.memchrPrefilter", true, 1},
		{"[ab]x?", "*prefilter.memchr2Prefilter", false, 1},
		{"[abc]", "*prefilter.memchr3Prefilter", true, 1},
		{`\d+`, "*prefilter.DigitPrefilter", false, 1},
		{"[0-9]", "*prefilter.DigitPrefilter", true, 1},
		{"[a-z]+", "*prefilter.ByteSetPrefilter", false, 1},
		{"hello", "*prefilter.memmemPrefilter", true, 5},
		{"hel+o", "*prefilter.memmemPrefilter", false, 3},
		{"[ab]cd", "*prefilter.ahoCorasickPrefilter", true, 3},
		{"x[0-9][0-9]", "*prefilter.ahoCorasickPrefilter", false, 2}, // 100 literals exceed the cap
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			pf := NewBuilder(prefixes(t, tt.pattern)).Build()
			if pf == nil {
				t.Fatal("Build() = nil")
			}
			if got := fmt.Sprintf("%T", pf); got != tt.want {
				t.Errorf("Build() = %s, want %s", got, tt.want)
			}
			if pf.IsComplete() != tt.complete {
				t.Errorf("IsComplete() = %v, want %v", pf.IsComplete(), tt.complete)
			}
			if pf.LiteralLen() != tt.litLen {
				t.Errorf("LiteralLen() = %d, want %d", pf.LiteralLen(), tt.litLen)
			}
		})
	}
}

func TestBuilderNoPrefilter(t *testing.T) {
	for _, pattern := range []string{"", "a?b", ".x", "^abc", `\W`} {
		if pf := NewBuilder(prefixes(t, pattern)).Build(); pf != nil {
			t.Errorf("%q: Build() = %T, want nil", pattern, pf)
		}
	}
	if pf := NewBuilder(nil).Build(); pf != nil {
		t.Errorf("nil Seq: Build() = %T, want nil", pf)
	}
	empty := literal.NewSeq(literal.NewLiteral(nil, true))
	if pf := NewBuilder(empty).Build(); pf != nil {
		t.Errorf("empty literal: Build() = %T, want nil", pf)
	}
}

func TestBuilderTruncatesUnevenLiterals(t *testing.T) {
	seq := literal.NewSeq(
		literal.NewLiteral([]byte("abcd"), true),
		literal.NewLiteral([]byte("xy"), true),
		literal.NewLiteral([]byte("pq"), true),
	)
	pf := NewBuilder(seq).Build()
	if pf.LiteralLen() != 2 || pf.IsComplete() {
		t.Errorf("LiteralLen()=%d IsComplete()=%v, want 2 and false", pf.LiteralLen(), pf.IsComplete())
	}
	// "ab" starts before "xy" ends first; the leftmost start wins.
	if got := pf.Find([]byte("..abxy"), 0); got != 2 {
		t.Errorf("Find() = %d, want 2", got)
	}
	if seq.Get(0).Len() != 4 {
		t.Error("Build modified the caller's sequence")
	}
}

// naiveFind returns the first position at or after start where any
// literal occurs.
func naiveFind(lits [][]byte, haystack []byte, start int) int {
	for pos := start; pos < len(haystack); pos++ {
		for _, lit := range lits {
			if bytes.HasPrefix(haystack[pos:], lit) {
				return pos
			}
		}
	}
	return -1
}

func TestFindAgreesWithNaiveScan(t *testing.T) {
	patterns := []string{"a", "[ab]", "[xyz]", `\d`, `\w`, "hello", "[hj]ello", "a[0-9]b"}
	haystacks := []string{
		"",
		"a",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
		"say hello and jello",
		"a1b a2b a3c",
		"  __ 42 ::",
		strings.Repeat("-", 40) + "y" + strings.Repeat("-", 40) + "b",
	}
	for _, pattern := range patterns {
		seq := prefixes(t, pattern)
		pf := NewBuilder(seq).Build()
		lits := seq.Literals()
		for _, h := range haystacks {
			for start := -1; start <= len(h)+1; start++ {
				want := -1
				if start >= 0 {
					want = naiveFind(lits, []byte(h), start)
				}
				if got := pf.Find([]byte(h), start); got != want {
					t.Fatalf("%q (%T): Find(%q, %d) = %d, want %d", pattern, pf, h, start, got, want)
				}
			}
		}
	}
}
