package syntax

import (
	"errors"
	"fmt"
)

// Compile errors. Use errors.Is to tell them apart; Compile always returns
// them wrapped in an *Error.
var (
	// ErrPatternTooLong indicates the pattern needs more instructions than
	// Limits.MaxInstructions allows.
	ErrPatternTooLong = errors.New("pattern too long")

	// ErrClassBufferOverflow indicates the character classes of the pattern
	// do not fit in Limits.ClassBufferSize bytes.
	ErrClassBufferOverflow = errors.New("character class buffer overflow")

	// ErrInvalidLimits indicates unusable compile limits.
	ErrInvalidLimits = errors.New("invalid compile limits")

	// ErrMalformedProg indicates an instruction list that breaks a program
	// invariant, such as a missing or misplaced OpEnd.
	ErrMalformedProg = errors.New("malformed program")
)

// ErrorCode classifies compile errors.
type ErrorCode uint8

const (
	// CodePatternTooLong corresponds to ErrPatternTooLong.
	CodePatternTooLong ErrorCode = iota + 1

	// CodeClassBufferOverflow corresponds to ErrClassBufferOverflow.
	CodeClassBufferOverflow

	// CodeInvalidLimits corresponds to ErrInvalidLimits.
	CodeInvalidLimits

	// CodeMalformedProg corresponds to ErrMalformedProg.
	CodeMalformedProg
)

// String returns a human-readable error code name.
func (c ErrorCode) String() string {
	switch c {
	case CodePatternTooLong:
		return "PatternTooLong"
	case CodeClassBufferOverflow:
		return "ClassBufferOverflow"
	case CodeInvalidLimits:
		return "InvalidLimits"
	case CodeMalformedProg:
		return "MalformedProg"
	default:
		return fmt.Sprintf("UnknownErrorCode(%d)", uint8(c))
	}
}

func (c ErrorCode) sentinel() error {
	switch c {
	case CodePatternTooLong:
		return ErrPatternTooLong
	case CodeClassBufferOverflow:
		return ErrClassBufferOverflow
	case CodeInvalidLimits:
		return ErrInvalidLimits
	case CodeMalformedProg:
		return ErrMalformedProg
	default:
		return nil
	}
}

// Error describes a failed compilation.
type Error struct {
	Code    ErrorCode
	Pattern string
	// Offset is the byte offset in Pattern where compilation stopped,
	// or -1 when the error is not tied to a position.
	Offset int
	// Detail optionally adds context, such as the limit that was hit.
	Detail string
}

func newError(code ErrorCode, pattern string, offset int, detail string) *Error {
	return &Error{Code: code, Pattern: pattern, Offset: offset, Detail: detail}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "miniregex: " + e.Code.String()
	if err := e.Code.sentinel(); err != nil {
		msg = "miniregex: " + err.Error()
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d in %q", msg, e.Offset, e.Pattern)
	}
	if e.Pattern != "" {
		return fmt.Sprintf("%s in %q", msg, e.Pattern)
	}
	return msg
}

// Unwrap returns the sentinel error matching Code.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}
