package literal

import (
	"strings"
	"testing"

	"github.com/duarterr/miniregex/backtrack"
	"github.com/duarterr/miniregex/syntax"
)

func extract(t *testing.T, pattern string) *Seq {
	t.Helper()
	prog, err := syntax.Compile(pattern, syntax.DefaultLimits())
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return New(DefaultConfig()).ExtractPrefixes(prog)
}

func TestExtractPrefixes(t *testing.T) {
	tests := []struct {
		pattern  string
		want     []string
		complete bool
	}{
		{"abc", []string{"abc"}, true},
		{"[ab]c", []string{"ac", "bc"}, true},
		{"a[0-1][0-1]", []string{"a00", "a01", "a10", "a11"}, true},
		{"ab+c", []string{"ab"}, false},
		{"abc$", []string{"abc"}, false},
		{"ab?c", []string{"a"}, false},
		{"ab*", []string{"a"}, false},
		{"a.b", []string{"a"}, false},
		{`x\sy`, []string{"x\ty", "x\ny", "x\vy", "x\fy", "x\ry", "x y"}, true},

		{"", nil, false},
		{"a?b", nil, false},
		{"a*", nil, false},
		{"^abc", nil, false},
		{"$", nil, false},
		{".abc", nil, false},
		{`\Dx`, nil, false},
		{"*a", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := extract(t, tt.pattern)
			got := make([]string, seq.Len())
			for i := range got {
				got[i] = string(seq.Get(i).Bytes)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("literals = %q, want %q", got, tt.want)
			}
			if seq.AllComplete() != tt.complete {
				t.Errorf("AllComplete() = %v, want %v", seq.AllComplete(), tt.complete)
			}
		})
	}
}

func TestExtractPrefixesLimits(t *testing.T) {
	// \w contributes 63 bytes; \d after it would overflow 64.
	seq := extract(t, `\w\d`)
	if seq.Len() != 63 || seq.MinLen() != 1 || seq.AllComplete() {
		t.Errorf(`\w\d: Len=%d MinLen=%d complete=%v`, seq.Len(), seq.MinLen(), seq.AllComplete())
	}

	digits := extract(t, `\d+\.\d+`)
	if digits.Len() != 10 {
		t.Fatalf(`\d+\.\d+: Len=%d, want 10`, digits.Len())
	}
	for i := 0; i < 10; i++ {
		if string(digits.Get(i).Bytes) != string(rune('0'+i)) {
			t.Errorf("Get(%d) = %q", i, digits.Get(i).Bytes)
		}
	}

	small := New(Config{MaxLiterals: 4, MaxClassExpansion: 2})
	prog := syntax.MustCompile("[ab][cd][ef]")
	if got := small.ExtractPrefixes(prog); got.Len() != 4 || got.MinLen() != 2 {
		t.Errorf("MaxLiterals 4: Len=%d MinLen=%d, want 4 and 2", got.Len(), got.MinLen())
	}
	if got := small.ExtractPrefixes(syntax.MustCompile("[abc]x")); !got.IsEmpty() {
		t.Errorf("3-byte class with MaxClassExpansion 2: got %d literals", got.Len())
	}
}

// TestPrefixesAreNecessary checks that every match starts with a literal.
func TestPrefixesAreNecessary(t *testing.T) {
	patterns := []string{"abc", "[ab]c", "a+b", `\d+x`, "x[^y]z", `\w\s`}
	texts := []string{"abc", "zzbc", "aaab", "12x", "xqz", "xyz", "a b", "_\t", ""}
	for _, p := range patterns {
		prog := syntax.MustCompile(p)
		seq := New(DefaultConfig()).ExtractPrefixes(prog)
		for _, text := range texts {
			for pos := 0; pos < len(text); pos++ {
				if !matchesAt(prog, text, pos) {
					continue
				}
				if !hasPrefixAt(seq, text, pos) {
					t.Errorf("%q matches %q at %d but no literal does", p, text, pos)
				}
			}
		}
	}
}

func matchesAt(prog *syntax.Prog, text string, pos int) bool {
	return backtrack.New(prog).MatchAt([]byte(text), pos)
}

func hasPrefixAt(seq *Seq, text string, pos int) bool {
	for _, lit := range seq.Literals() {
		if strings.HasPrefix(text[pos:], string(lit)) {
			return true
		}
	}
	return false
}

func TestByteSet(t *testing.T) {
	set := ByteSet(syntax.Simple(syntax.OpDigit))
	n := 0
	for c := 0; c < 256; c++ {
		if set[c] {
			n++
		}
	}
	if n != 10 || !set['5'] {
		t.Errorf("digit set has %d members", n)
	}
	if set := ByteSet(syntax.Simple(syntax.OpEndAnchor)); set['$'] {
		t.Error("anchors should accept no byte")
	}
}
