package simd

// byFrequency lists bytes from most to least common in typical text and
// source code. Bytes not listed rank as rarest.
const byFrequency = " etaoinsrhldcumfpgwyb,.\n_vk0-12()=\"'/:;3\tx*5{}4>9<6&87j[]#q|z!+$%@~^`\\?\r"

// byteRank orders bytes by how common they are; lower is rarer.
var byteRank = func() (rank [256]uint8) {
	n := len(byFrequency)
	for i := 0; i < n; i++ {
		b := byFrequency[i]
		r := uint8(n - i)
		rank[b] = r
		if b >= 'a' && b <= 'z' {
			// Upper case is about a tenth as common as lower case.
			rank[b-'a'+'A'] = r / 4
		}
	}
	return rank
}()

// ByteRank returns the frequency rank of b. Rarer bytes rank lower.
func ByteRank(b byte) uint8 {
	return byteRank[b]
}
