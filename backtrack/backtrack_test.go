package backtrack

import (
	"strings"
	"sync"
	"testing"

	"github.com/duarterr/miniregex/syntax"
)

func find(t *testing.T, pattern, text string) int {
	t.Helper()
	prog, err := syntax.Compile(pattern, syntax.DefaultLimits())
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return New(prog).Find([]byte(text))
}

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    int
	}{
		// Literals
		{"exact", "abc", "abc", 0},
		{"inside", "abc", "xxabcxx", 2},
		{"absent", "abc", "abxabd", -1},
		{"empty text", "a", "", -1},

		// Anchors
		{"anchored both", "^abc$", "abc", 0},
		{"anchored start fails later", "^abc$", "xabc", -1},
		{"anchored start only", "^ab", "abc", 0},
		{"end anchor", "bc$", "abcbc", 3},
		{"end anchor miss", "ab$", "abc", -1},
		{"start anchor empty text", "^", "", 0},
		{"anchors empty text", "^$", "", 0},
		{"anchors non-empty text", "^$", "a", -1},
		{"lone end anchor", "$", "abc", -1},
		{"lone end anchor empty text", "$", "", 0},
		{"end anchor mid pattern never matches", "a$b", "a$b", -1},

		// Dot and classes
		{"dot", "a.c", "xxabcxx", 2},
		{"dot needs a byte", "a.", "a", -1},
		{"digit", `\d`, "abc7", 3},
		{"not digit", `\D`, "123x", 3},
		{"word", `\w\w`, "!! a_1", 3},
		{"not word", `\W`, "abc-", 3},
		{"space", `a\sb`, "a\tb", 0},
		{"not space", `\S`, "  \n x", 4},
		{"class", "[xyz]", "abcz", 3},
		{"range class plus", "[0-9]+", "foo123bar", 3},
		{"negated class", "[^abc]", "abcd", 3},
		{"escaped dot", `a\.b`, "axb a.b", 4},

		// Quantifiers
		{"star greedy run", "a*b", "aaab", 0},
		{"star zero", "a*b", "b", 0},
		{"star empty match at start", "x*", "abc", 0},
		{"plus", "a+b", "caaab", 1},
		{"plus needs one", "a+b", "b", -1},
		{"question zero", "ab?c", "ac", 0},
		{"question one", "ab?c", "abc", 0},
		{"question too many", "ab?c", "abbc", -1},
		{"question empty text", "a?", "", 0},
		{"question at end", "c?$", "abc", 2},
		{"star then end anchor", "a*$", "baa", 1},
		{"dot star", "a.*z", "xxa123z", 2},
		{"plus then literal", `\d+x`, "12 34x", 3},
		{"class star", "[ab]*c", "zzabbac", 2},

		// Empty-match boundary: an empty match at the end of a
		// non-empty text is not reported.
		{"star only at end", "z*$", "abc", -1},
		{"question only at end", "z?$", "ab", -1},

		// Quantifier without operand never matches a byte.
		{"leading star", "*a", "*a", -1},
		{"leading plus empty", "+", "", -1},
		{"stray second star", "a**", "aaa", -1},

		// Bytes are bytes.
		{"nul in text", "b", "a\x00b", 2},
		{"high byte", "\xff", "ab\xff", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := find(t, tt.pattern, tt.text); got != tt.want {
				t.Errorf("Find(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
			}
		})
	}
}

// TestZeroOrOnePrefersNotConsuming documents that x? tries the rest first.
// The start offset is the same either way; the difference shows through
// MatchAt on texts where only one of the two choices works.
func TestZeroOrOnePrefersNotConsuming(t *testing.T) {
	m := New(syntax.MustCompile("a?a"))
	if !m.MatchAt([]byte("a"), 0) {
		t.Error("a?a should match \"a\" by skipping the optional a")
	}
	if !m.MatchAt([]byte("aa"), 0) {
		t.Error("a?a should match \"aa\" by consuming the optional a")
	}
}

func TestMatchAt(t *testing.T) {
	m := New(syntax.MustCompile("b+c"))
	text := []byte("abbc")
	tests := []struct {
		pos  int
		want bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, false},
		{5, false},
	}
	for _, tt := range tests {
		if got := m.MatchAt(text, tt.pos); got != tt.want {
			t.Errorf("MatchAt(%q, %d) = %v, want %v", text, tt.pos, got, tt.want)
		}
	}

	anchored := New(syntax.MustCompile("^b"))
	if !anchored.IsStartAnchored() {
		t.Error("IsStartAnchored() = false")
	}
	if anchored.MatchAt([]byte("bb"), 1) {
		t.Error("anchored program matched past offset 0")
	}
	if !anchored.MatchAt([]byte("bb"), 0) {
		t.Error("anchored program did not match at 0")
	}
}

func TestFindFrom(t *testing.T) {
	m := New(syntax.MustCompile("ab"))
	text := []byte("ab ab ab")
	tests := []struct{ from, want int }{
		{-3, 0}, {0, 0}, {1, 3}, {3, 3}, {4, 6}, {7, -1}, {8, -1}, {9, -1},
	}
	for _, tt := range tests {
		if got := m.FindFrom(text, tt.from); got != tt.want {
			t.Errorf("FindFrom(%q, %d) = %d, want %d", text, tt.from, got, tt.want)
		}
	}

	if got := New(syntax.MustCompile("^ab")).FindFrom(text, 1); got != -1 {
		t.Errorf("anchored FindFrom past 0 = %d, want -1", got)
	}
	if got := New(syntax.MustCompile("x*")).FindFrom(text, 8); got != -1 {
		t.Errorf("empty match at the end = %d, want -1", got)
	}
}

func TestFindDeterministic(t *testing.T) {
	m := New(syntax.MustCompile(`[a-c]+\d?x`))
	text := []byte("zzz cab9x")
	first := m.Find(text)
	for i := 0; i < 100; i++ {
		if got := m.Find(text); got != first {
			t.Fatalf("run %d: Find = %d, first run gave %d", i, got, first)
		}
	}
	if first != 4 {
		t.Errorf("Find = %d, want 4", first)
	}
}

// TestLongRunsDoNotGrowTheStack checks that quantifiers loop over text
// instead of recursing per byte.
func TestLongRunsDoNotGrowTheStack(t *testing.T) {
	text := []byte(strings.Repeat("a", 1<<20) + "b")

	for _, pattern := range []string{"a*b", "a+b", ".*b", "a*a*b"} {
		if got := New(syntax.MustCompile(pattern)).Find(text); got != 0 {
			t.Errorf("Find(%q) = %d, want 0", pattern, got)
		}
	}
	if got := New(syntax.MustCompile("a*c")).Find(text[:4096]); got != -1 {
		t.Errorf("Find(a*c) = %d, want -1", got)
	}
}

func TestConcurrentFind(t *testing.T) {
	m := New(syntax.MustCompile(`\w+@\w+\.com`))
	texts := []string{"mail bob@example.com now", "nothing here", "x@y.com"}
	want := []int{5, -1, 0}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := i % len(texts)
				if got := m.Find([]byte(texts[k])); got != want[k] {
					t.Errorf("Find(%q) = %d, want %d", texts[k], got, want[k])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkFindLiteral(b *testing.B) {
	m := New(syntax.MustCompile("needle"))
	text := []byte(strings.Repeat("haystack ", 1000) + "needle")
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Find(text)
	}
}

func BenchmarkFindDigits(b *testing.B) {
	m := New(syntax.MustCompile(`[0-9]+\.[0-9]+`))
	text := []byte(strings.Repeat("version ", 1000) + "1.25")
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Find(text)
	}
}
