// Package simd provides the byte-search primitives behind the prefilters.
//
// On CPUs with wide vector units (AVX2 on x86-64, ASIMD on arm64) the
// runtime's vectorized bytes.IndexByte beats any portable code, so single
// needle searches go through it. Everything else, and every search on
// other CPUs, uses SWAR (SIMD Within A Register) loops that test eight
// bytes per iteration.
package simd

import "golang.org/x/sys/cpu"

// hasVectorIndexByte reports whether bytes.IndexByte is backed by a wide
// vector implementation on this CPU.
var hasVectorIndexByte = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// Features describes the dispatch decisions taken at startup.
type Features struct {
	// VectorIndexByte is true when single-byte search uses bytes.IndexByte.
	VectorIndexByte bool
}

// Detected returns the features selected for the running CPU.
func Detected() Features {
	return Features{VectorIndexByte: hasVectorIndexByte}
}
