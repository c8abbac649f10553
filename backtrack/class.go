package backtrack

import "github.com/duarterr/miniregex/syntax"

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsWord reports whether c is in [A-Za-z0-9_].
func IsWord(c byte) bool {
	return c == '_' || IsAlpha(c) || IsDigit(c)
}

// IsSpace reports whether c is one of ' ', \t, \n, \r, \f, \v.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// MatchOne reports whether the single-byte instruction inst accepts c.
//
// Anchors, quantifiers and OpEnd never accept a byte. A negated class is
// the plain class result inverted as a whole, escapes included; see
// MatchClass.
func MatchOne(inst syntax.Inst, c byte) bool {
	switch inst.Op() {
	case syntax.OpAnyChar:
		return true
	case syntax.OpLiteral:
		b, _ := inst.Byte()
		return b == c
	case syntax.OpCharClass:
		cls, _ := inst.Class()
		return MatchClass(c, cls)
	case syntax.OpNegatedCharClass:
		cls, _ := inst.Class()
		return !MatchClass(c, cls)
	case syntax.OpDigit:
		return IsDigit(c)
	case syntax.OpNotDigit:
		return !IsDigit(c)
	case syntax.OpWord:
		return IsWord(c)
	case syntax.OpNotWord:
		return !IsWord(c)
	case syntax.OpWhitespace:
		return IsSpace(c)
	case syntax.OpNotWhitespace:
		return !IsSpace(c)
	default:
		return false
	}
}

// matchEscape reports whether c matches the class escape `\e`.
func matchEscape(c, e byte) bool {
	switch e {
	case 'd':
		return IsDigit(c)
	case 'D':
		return !IsDigit(c)
	case 'w':
		return IsWord(c)
	case 'W':
		return !IsWord(c)
	case 's':
		return IsSpace(c)
	case 'S':
		return !IsSpace(c)
	default:
		return c == e
	}
}

// MatchClass reports whether c is accepted by the raw class contents.
//
// The class is scanned left to right. At each position, in order:
//   - lo-hi is a range when lo is not '-' and c is not '-';
//   - a backslash and the byte after it form an escape (\d, \w, \s and
//     their negations, or the escaped byte itself);
//   - any other byte matches itself, except that a '-' equal to c settles
//     the whole class: it matches only as the first or last byte.
//
// Inverting this result for [^...] inverts escapes too, so a negated class
// that mixes literals and escapes may not mean what it reads like.
func MatchClass(c byte, cls syntax.Class) bool {
	n := cls.Len()
	for i := 0; i < n; i++ {
		b := cls.At(i)
		if c != '-' && b != '-' && i+2 < n && cls.At(i+1) == '-' && c >= b && c <= cls.At(i+2) {
			return true
		}
		switch {
		case b == '\\':
			i++
			if i >= n {
				return false
			}
			if matchEscape(c, cls.At(i)) {
				return true
			}
		case b == c:
			if c == '-' {
				return i == 0 || i == n-1
			}
			return true
		}
	}
	return false
}
