package prefilter

import "github.com/coregx/ahocorasick"

// ahoCorasickPrefilter searches for several literals of one length at once.
//
// With equal lengths the first match the automaton reports also has the
// leftmost start, which is the candidate Find must return.
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	litLen    int
	heapBytes int
	complete  bool
}

// newAhoCorasickPrefilter returns nil if the automaton cannot be built.
func newAhoCorasickPrefilter(lits [][]byte, complete bool) Prefilter {
	builder := ahocorasick.NewBuilder()
	size := 0
	for _, lit := range lits {
		builder.AddPattern(lit)
		size += len(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{
		automaton: auto,
		litLen:    len(lits[0]),
		heapBytes: size,
		complete:  complete,
	}
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }
func (p *ahoCorasickPrefilter) LiteralLen() int  { return p.litLen }

// HeapBytes counts the literal bytes; the automaton's own tables are not
// exposed by the library.
func (p *ahoCorasickPrefilter) HeapBytes() int { return p.heapBytes }
