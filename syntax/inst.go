// Package syntax compiles miniregex patterns into programs.
//
// The supported syntax is deliberately small:
//
//	.          any byte
//	^  $       start and end anchors
//	*  +  ?    zero-or-more, one-or-more, zero-or-one of the previous instruction
//	[abc]      character class, ranges such as [a-zA-Z0-9] are allowed
//	[^abc]     negated character class
//	\d \w \s   ASCII digit, word and whitespace classes
//	\D \W \S   their negations
//	\x         the byte x itself
//
// A pattern compiles to a Prog: a bounded, immutable list of instructions
// terminated by an OpEnd sentinel. Class contents are kept raw; ranges and
// escapes inside a class are interpreted by the matcher.
package syntax

import (
	"fmt"
	"strconv"
)

// Op identifies the kind of an instruction.
type Op uint8

const (
	// OpEnd terminates every program.
	OpEnd Op = iota
	OpAnyChar
	OpStartAnchor
	OpEndAnchor
	OpZeroOrOne
	OpZeroOrMore
	OpOneOrMore
	OpLiteral
	OpCharClass
	OpNegatedCharClass
	OpDigit
	OpNotDigit
	OpWord
	OpNotWord
	OpWhitespace
	OpNotWhitespace
)

var opNames = [...]string{
	OpEnd:              "End",
	OpAnyChar:          "AnyChar",
	OpStartAnchor:      "StartAnchor",
	OpEndAnchor:        "EndAnchor",
	OpZeroOrOne:        "ZeroOrOne",
	OpZeroOrMore:       "ZeroOrMore",
	OpOneOrMore:        "OneOrMore",
	OpLiteral:          "Literal",
	OpCharClass:        "CharClass",
	OpNegatedCharClass: "NegatedCharClass",
	OpDigit:            "Digit",
	OpNotDigit:         "NotDigit",
	OpWord:             "Word",
	OpNotWord:          "NotWord",
	OpWhitespace:       "Whitespace",
	OpNotWhitespace:    "NotWhitespace",
}

// String returns the name of the op.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// hasPayload reports whether instructions of this op carry a byte or a class.
func (op Op) hasPayload() bool {
	return op == OpLiteral || op == OpCharClass || op == OpNegatedCharClass
}

// Class holds the raw bytes found between '[' (or "[^") and ']'.
//
// The contents are not interpreted: "a-z" is three bytes and an escape such
// as `\d` is two. A Class is immutable and safe to share.
type Class struct {
	raw string
}

// NewClass returns a Class with the given raw contents.
func NewClass(raw string) Class {
	return Class{raw: raw}
}

// Len returns the number of raw bytes in the class.
func (c Class) Len() int {
	return len(c.raw)
}

// At returns the i-th raw byte.
func (c Class) At(i int) byte {
	return c.raw[i]
}

// Bytes returns a copy of the raw contents.
func (c Class) Bytes() []byte {
	return []byte(c.raw)
}

// String returns the raw contents.
func (c Class) String() string {
	return c.raw
}

// Inst is a single compiled instruction.
//
// Literal instructions carry a byte, class instructions carry a Class, and
// every other op carries nothing. The two payloads live in separate fields,
// so the zero value of one is never mistaken for the other.
type Inst struct {
	op    Op
	b     byte
	class Class
}

// Simple returns an instruction for an op without payload.
// It panics for OpLiteral, OpCharClass and OpNegatedCharClass.
func Simple(op Op) Inst {
	if op.hasPayload() || int(op) >= len(opNames) {
		panic("syntax: Simple called with op " + op.String())
	}
	return Inst{op: op}
}

// Literal returns an instruction matching exactly b.
func Literal(b byte) Inst {
	return Inst{op: OpLiteral, b: b}
}

// CharClass returns an instruction matching any byte of c.
func CharClass(c Class) Inst {
	return Inst{op: OpCharClass, class: c}
}

// NegatedCharClass returns an instruction matching any byte not in c.
func NegatedCharClass(c Class) Inst {
	return Inst{op: OpNegatedCharClass, class: c}
}

// Op returns the instruction kind.
func (i Inst) Op() Op {
	return i.op
}

// Byte returns the literal byte. ok is false unless the op is OpLiteral.
func (i Inst) Byte() (b byte, ok bool) {
	if i.op != OpLiteral {
		return 0, false
	}
	return i.b, true
}

// Class returns the class contents. ok is false unless the op is
// OpCharClass or OpNegatedCharClass.
func (i Inst) Class() (c Class, ok bool) {
	if i.op != OpCharClass && i.op != OpNegatedCharClass {
		return Class{}, false
	}
	return i.class, true
}

// IsQuantifier reports whether the instruction is *, + or ?.
func (i Inst) IsQuantifier() bool {
	switch i.op {
	case OpZeroOrOne, OpZeroOrMore, OpOneOrMore:
		return true
	}
	return false
}

// String returns a debug representation such as Literal('a') or CharClass("a-z").
func (i Inst) String() string {
	switch i.op {
	case OpLiteral:
		return "Literal(" + strconv.QuoteRune(rune(i.b)) + ")"
	case OpCharClass, OpNegatedCharClass:
		return i.op.String() + "(" + strconv.Quote(i.class.raw) + ")"
	default:
		return i.op.String()
	}
}
