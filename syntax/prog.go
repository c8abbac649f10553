package syntax

import (
	"fmt"
	"strings"
)

// Limits bounds the size of a compiled program.
type Limits struct {
	// MaxInstructions is the number of instruction slots, including the
	// terminating OpEnd. Default: 30.
	MaxInstructions int

	// ClassBufferSize is the number of bytes available to character
	// classes. One byte is reserved and every class uses its length plus
	// one terminator byte, so with the default of 40 a single class may
	// hold up to 38 bytes. Default: 40.
	ClassBufferSize int
}

// DefaultLimits returns the limits used when none are given.
func DefaultLimits() Limits {
	return Limits{
		MaxInstructions: 30,
		ClassBufferSize: 40,
	}
}

// Validate checks that the limits can hold at least an empty program.
func (l Limits) Validate() error {
	if l.MaxInstructions < 2 {
		return newError(CodeInvalidLimits, "", -1,
			fmt.Sprintf("MaxInstructions must be at least 2, got %d", l.MaxInstructions))
	}
	if l.ClassBufferSize < 1 {
		return newError(CodeInvalidLimits, "", -1,
			fmt.Sprintf("ClassBufferSize must be at least 1, got %d", l.ClassBufferSize))
	}
	return nil
}

// classCost returns the class buffer bytes consumed by a class of n bytes.
func classCost(n int) int {
	return n + 1
}

// Prog is a compiled pattern: instructions terminated by exactly one OpEnd.
//
// A Prog is immutable after construction and safe for concurrent use.
type Prog struct {
	insts      []Inst
	pattern    string
	classBytes int
}

// NewProg builds a program from a hand-written instruction list, checking
// the same invariants Compile guarantees. The list must end with a single
// OpEnd. The slice is copied.
func NewProg(pattern string, insts []Inst, limits Limits) (*Prog, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	if len(insts) == 0 || insts[len(insts)-1].op != OpEnd {
		return nil, newError(CodeMalformedProg, pattern, -1, "program must end with End")
	}
	if len(insts) > limits.MaxInstructions {
		return nil, newError(CodePatternTooLong, pattern, -1,
			fmt.Sprintf("%d instructions, limit %d", len(insts), limits.MaxInstructions))
	}

	used := 1
	for idx, inst := range insts[:len(insts)-1] {
		switch {
		case inst.op == OpEnd:
			return nil, newError(CodeMalformedProg, pattern, -1,
				fmt.Sprintf("End at slot %d before the last slot", idx))
		case int(inst.op) >= len(opNames):
			return nil, newError(CodeMalformedProg, pattern, -1,
				fmt.Sprintf("unknown op %d at slot %d", uint8(inst.op), idx))
		case inst.op == OpCharClass || inst.op == OpNegatedCharClass:
			used += classCost(inst.class.Len())
		}
	}
	if used > limits.ClassBufferSize {
		return nil, newError(CodeClassBufferOverflow, pattern, -1,
			fmt.Sprintf("%d class bytes, limit %d", used, limits.ClassBufferSize))
	}

	owned := make([]Inst, len(insts))
	copy(owned, insts)
	return &Prog{insts: owned, pattern: pattern, classBytes: used}, nil
}

// MustNewProg is like NewProg but panics on error. It is intended for
// generated code, where the program was validated at generation time.
func MustNewProg(pattern string, insts []Inst, limits Limits) *Prog {
	p, err := NewProg(pattern, insts, limits)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of instructions, including the final OpEnd.
func (p *Prog) Len() int {
	return len(p.insts)
}

// At returns the i-th instruction.
func (p *Prog) At(i int) Inst {
	return p.insts[i]
}

// Insts returns a copy of the instruction list.
func (p *Prog) Insts() []Inst {
	out := make([]Inst, len(p.insts))
	copy(out, p.insts)
	return out
}

// Pattern returns the source pattern the program was built from.
func (p *Prog) Pattern() string {
	return p.pattern
}

// ClassBytes returns the class buffer bytes the program uses, including
// the reserved byte.
func (p *Prog) ClassBytes() int {
	return p.classBytes
}

// String returns one instruction per line, prefixed by its slot number.
func (p *Prog) String() string {
	var b strings.Builder
	for idx, inst := range p.insts {
		fmt.Fprintf(&b, "%3d  %s\n", idx, inst)
	}
	return b.String()
}
