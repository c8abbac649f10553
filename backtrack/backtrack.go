// Package backtrack executes miniregex programs with recursive backtracking.
//
// Quantifiers backtrack one level deep: each of *, + and ? explores the
// lengths of its own run and hands the rest of the program to a fresh
// attempt, but never revisits a decision made by an earlier quantifier.
//
// Two behaviors can be surprising:
//   - x? tries the rest of the program before consuming x;
//   - [^...] is the inverse of [...] as a whole, see MatchClass.
//
// Handlers loop over the text and only recurse into the remainder of the
// program, so the call depth is bounded by the number of instructions and
// not by the length of the text.
package backtrack

import "github.com/duarterr/miniregex/syntax"

// Matcher runs a compiled program against text.
//
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	insts []syntax.Inst
}

// New returns a Matcher for prog.
func New(prog *syntax.Prog) *Matcher {
	return &Matcher{insts: prog.Insts()}
}

// IsStartAnchored reports whether the program begins with '^'.
func (m *Matcher) IsStartAnchored() bool {
	return m.insts[0].Op() == syntax.OpStartAnchor
}

// Find returns the offset of the leftmost match in text, or -1.
//
// Start-anchored programs are only tried at offset 0. Otherwise every
// offset from 0 to len(text) is tried in turn. An empty match at the very
// end of a non-empty text is not reported.
func (m *Matcher) Find(text []byte) int {
	return m.FindFrom(text, 0)
}

// FindFrom is like Find but only tries offsets from from onward. The
// result is still an offset into text.
func (m *Matcher) FindFrom(text []byte, from int) int {
	if from < 0 {
		from = 0
	}
	if m.IsStartAnchored() {
		if from == 0 && matchHere(m.insts[1:], text, 0) {
			return 0
		}
		return -1
	}

	for i := from; i <= len(text); i++ {
		if matchHere(m.insts, text, i) {
			if i == len(text) && i > 0 {
				return -1
			}
			return i
		}
	}
	return -1
}

// MatchAt reports whether the program matches text starting exactly at pos.
// For start-anchored programs only pos 0 can match.
func (m *Matcher) MatchAt(text []byte, pos int) bool {
	if pos < 0 || pos > len(text) {
		return false
	}
	if m.IsStartAnchored() {
		return pos == 0 && matchHere(m.insts[1:], text, 0)
	}
	return matchHere(m.insts, text, pos)
}

// matchHere matches insts against text[pos:].
func matchHere(insts []syntax.Inst, text []byte, pos int) bool {
	for {
		cur := insts[0]
		if cur.Op() == syntax.OpEnd {
			return true
		}

		switch next := insts[1]; next.Op() {
		case syntax.OpZeroOrOne:
			return matchZeroOrOne(cur, insts[2:], text, pos)
		case syntax.OpZeroOrMore:
			return matchZeroOrMore(cur, insts[2:], text, pos)
		case syntax.OpOneOrMore:
			return matchOneOrMore(cur, insts[2:], text, pos)
		case syntax.OpEnd:
			if cur.Op() == syntax.OpEndAnchor {
				return pos == len(text)
			}
		}

		if pos >= len(text) || !MatchOne(cur, text[pos]) {
			return false
		}
		insts = insts[1:]
		pos++
	}
}

// matchZeroOrOne tries rest without consuming first, then after one byte.
func matchZeroOrOne(inst syntax.Inst, rest []syntax.Inst, text []byte, pos int) bool {
	if matchHere(rest, text, pos) {
		return true
	}
	if pos < len(text) && MatchOne(inst, text[pos]) {
		return matchHere(rest, text, pos+1)
	}
	return false
}

// matchZeroOrMore tries rest after 0, 1, 2, ... bytes matching inst.
func matchZeroOrMore(inst syntax.Inst, rest []syntax.Inst, text []byte, pos int) bool {
	for {
		if matchHere(rest, text, pos) {
			return true
		}
		if pos >= len(text) || !MatchOne(inst, text[pos]) {
			return false
		}
		pos++
	}
}

// matchOneOrMore tries rest after 1, 2, ... bytes matching inst.
func matchOneOrMore(inst syntax.Inst, rest []syntax.Inst, text []byte, pos int) bool {
	for pos < len(text) && MatchOne(inst, text[pos]) {
		pos++
		if matchHere(rest, text, pos) {
			return true
		}
	}
	return false
}
