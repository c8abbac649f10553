package simd

import "bytes"

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	if hasVectorIndexByte {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle,
// or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of any of the three
// needles, or -1 if none is present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3Generic(haystack, needle1, needle2, needle3)
}

// MemchrDigitAt returns the index of the first ASCII digit at or after
// at, or -1 if there is none or at is out of range.
func MemchrDigitAt(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}
	pos := memchrDigitGeneric(haystack[at:])
	if pos < 0 {
		return -1
	}
	return at + pos
}

// MemchrInTable returns the index of the first byte b of haystack with
// table[b] set, or -1.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// Memmem returns the index of the first instance of needle in haystack,
// or -1. An empty needle matches at 0.
//
// The search anchors on the rarest byte of the needle, so long runs of
// common bytes in the haystack are skipped with Memchr.
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	rare, offset := rareByte(needle)
	last := len(haystack) - len(needle)
	for pos := 0; pos <= last; {
		idx := Memchr(haystack[pos+offset:last+offset+1], rare)
		if idx < 0 {
			return -1
		}
		start := pos + idx
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		pos = start + 1
	}
	return -1
}

// rareByte picks the needle byte least likely to occur in typical text.
func rareByte(needle []byte) (byte, int) {
	best, offset := needle[0], 0
	for i := 1; i < len(needle); i++ {
		if byteRank[needle[i]] < byteRank[best] {
			best, offset = needle[i], i
		}
	}
	return best, offset
}
