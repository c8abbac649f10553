package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroBytes returns a word with the high bit set in every byte of v that
// is zero. Only the lowest set bit is exact, which is all callers use.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// broadcast replicates b into all eight bytes of a word.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

func memchrGeneric(haystack []byte, needle byte) int {
	mask := broadcast(needle)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if found := zeroBytes(chunk ^ mask); found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

func memchr2Generic(haystack []byte, n1, n2 byte) int {
	m1, m2 := broadcast(n1), broadcast(n2)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if found := zeroBytes(chunk^m1) | zeroBytes(chunk^m2); found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == n1 || b == n2 {
			return i
		}
	}
	return -1
}

func memchr3Generic(haystack []byte, n1, n2, n3 byte) int {
	m1, m2, m3 := broadcast(n1), broadcast(n2), broadcast(n3)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		found := zeroBytes(chunk^m1) | zeroBytes(chunk^m2) | zeroBytes(chunk^m3)
		if found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == n1 || b == n2 || b == n3 {
			return i
		}
	}
	return -1
}

// memchrDigitGeneric finds the first byte in '0'..'9', skipping eight
// bytes at a time while a word holds no digit.
func memchrDigitGeneric(haystack []byte) int {
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if hasDigit(chunk) {
			for j := i; j < i+8; j++ {
				if isDigit(haystack[j]) {
					return j
				}
			}
		}
	}
	for ; i < len(haystack); i++ {
		if isDigit(haystack[i]) {
			return i
		}
	}
	return -1
}

// hasDigit reports whether any byte of w is an ASCII digit.
func hasDigit(w uint64) bool {
	// Clear the high bit so per-byte adds cannot carry across bytes.
	low := w & ^uint64(hi8)
	// geZero: byte >= '0' (within 0x00..0x7f), marked in the high bit.
	geZero := (low + broadcast(0x80-'0')) & hi8
	// leNine: byte <= '9'.
	leNine := ^(low + broadcast(0x7f-'9')) & hi8
	return geZero&leNine&^w != 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
