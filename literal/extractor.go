package literal

import (
	"github.com/duarterr/miniregex/backtrack"
	"github.com/duarterr/miniregex/syntax"
)

// Config bounds literal extraction.
//
// Example:
//
//	config := literal.Config{MaxLiterals: 64, MaxClassExpansion: 64}
//	extractor := literal.New(config)
type Config struct {
	// MaxLiterals caps the size of the cross product built from byte sets.
	// Extraction stops before an instruction that would exceed it.
	// Default: 64.
	MaxLiterals int

	// MaxClassExpansion is the largest byte set an instruction may
	// contribute. Instructions accepting more bytes, such as '.' or \W,
	// end extraction. Default: 64, which lets \w (63 bytes) through.
	MaxClassExpansion int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:       64,
		MaxClassExpansion: 64,
	}
}

// Extractor derives prefix literals from compiled programs.
// An Extractor holds no state besides its configuration and may be shared.
type Extractor struct {
	config Config
}

// New creates an Extractor with the given configuration.
func New(config Config) *Extractor {
	return &Extractor{config: config}
}

// ByteSet returns the set of bytes inst accepts on its own.
// Anchors, quantifiers and OpEnd accept no byte.
func ByteSet(inst syntax.Inst) [256]bool {
	var set [256]bool
	for c := 0; c < 256; c++ {
		set[c] = backtrack.MatchOne(inst, byte(c))
	}
	return set
}

// setBytes lists the members of set in ascending order.
func setBytes(set *[256]bool) []byte {
	var out []byte
	for c := 0; c < 256; c++ {
		if set[c] {
			out = append(out, byte(c))
		}
	}
	return out
}

// ExtractPrefixes returns the literals every match of prog starts with.
//
// Instructions are walked from the first one while they are required:
//   - a plain single-byte instruction extends every literal by each byte
//     of its set;
//   - x+ extends by the set of x once, then the walk stops;
//   - x? and x* stop the walk, as do anchors and oversized sets.
//
// When the walk reaches the end of the program the literals are complete.
// Start-anchored programs yield an empty Seq: they are only tried at
// offset 0 and gain nothing from a prefilter.
//
// Examples:
//
//	"abc"     → ["abc"] complete
//	"[ab]c"   → ["ac", "bc"] complete
//	"ab+c"    → ["ab"]
//	"\d+\.\d" → ["0" .. "9"]
//	"a?b"     → []
func (e *Extractor) ExtractPrefixes(prog *syntax.Prog) *Seq {
	prefixes := [][]byte{nil}
	n := prog.Len()
	for k := 0; k < n; k++ {
		cur := prog.At(k)
		if cur.Op() == syntax.OpEnd {
			return e.seq(prefixes, k > 0)
		}

		next := prog.At(k + 1)
		if next.Op() == syntax.OpZeroOrOne || next.Op() == syntax.OpZeroOrMore {
			break
		}
		set := ByteSet(cur)
		members := setBytes(&set)
		if len(members) == 0 || len(members) > e.config.MaxClassExpansion ||
			len(prefixes)*len(members) > e.config.MaxLiterals {
			break
		}
		prefixes = cross(prefixes, members)
		if next.Op() == syntax.OpOneOrMore {
			break
		}
	}
	return e.seq(prefixes, false)
}

// cross extends every prefix by every byte of members.
func cross(prefixes [][]byte, members []byte) [][]byte {
	out := make([][]byte, 0, len(prefixes)*len(members))
	for _, p := range prefixes {
		for _, c := range members {
			lit := make([]byte, len(p)+1)
			copy(lit, p)
			lit[len(p)] = c
			out = append(out, lit)
		}
	}
	return out
}

func (e *Extractor) seq(prefixes [][]byte, complete bool) *Seq {
	if len(prefixes) == 0 || len(prefixes[0]) == 0 {
		return NewSeq()
	}
	lits := make([]Literal, len(prefixes))
	for i, p := range prefixes {
		lits[i] = NewLiteral(p, complete)
	}
	return NewSeq(lits...)
}
