// Package miniregex is a small regular expression engine for constrained
// environments.
//
// Patterns compile into a bounded program of single-byte instructions that
// a recursive backtracking matcher runs against text. The syntax is:
//
//	c        literal byte
//	.        any byte
//	^ $      start and end of text
//	* + ?    zero or more, one or more, zero or one of the preceding item
//	[abc]    class, with ranges such as [a-z] and escapes such as [\d_]
//	[^abc]   negated class
//	\d \w \s digit, word byte, whitespace (\D \W \S negated)
//	\c       the byte c itself, for any other c
//
// There is no alternation, grouping or counted repetition. A search
// reports the offset where the leftmost match starts, or -1.
//
// Basic usage:
//
//	re, err := miniregex.Compile(`[0-9]+\.[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(re.IndexString("version 1.25")) // 8
//
// Or, compiling on the fly:
//
//	pos := miniregex.Index("xxabcxx", "abc") // 2
//
// Program capacity is bounded: by default 30 instructions including the
// end marker, and a 40-byte buffer shared by all character classes.
// Both limits are configurable through CompileWithConfig.
package miniregex

import (
	"github.com/duarterr/miniregex/meta"
	"github.com/duarterr/miniregex/syntax"
)

// Regex is a compiled regular expression.
//
// A Regex is safe for concurrent use by multiple goroutines.
//
// Example:
//
//	re := miniregex.MustCompile(`hello`)
//	if re.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles pattern with the default configuration.
//
// The returned error wraps syntax.ErrPatternTooLong or
// syntax.ErrClassBufferOverflow and is a *syntax.Error.
//
// Example:
//
//	re, err := miniregex.Compile(`\d+-\d+`)
//	if errors.Is(err, syntax.ErrPatternTooLong) {
//	    // raise meta.Config.MaxInstructions
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var version = miniregex.MustCompile(`\d+\.\d+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("miniregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with a custom configuration.
//
// Example:
//
//	config := miniregex.DefaultConfig()
//	config.MaxInstructions = 128
//	config.ClassBufferSize = 256
//	re, err := miniregex.CompileWithConfig(pattern, config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.Compile(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: pattern}, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// FromProg wraps an already compiled program, such as one built with
// syntax.NewProg by generated code.
func FromProg(prog *syntax.Prog, config meta.Config) (*Regex, error) {
	engine, err := meta.NewEngine(prog, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: prog.Pattern()}, nil
}

// MustFromProg is like FromProg with the default configuration, and
// panics on error.
func MustFromProg(prog *syntax.Prog) *Regex {
	re, err := FromProg(prog, DefaultConfig())
	if err != nil {
		panic("miniregex: FromProg(`" + prog.Pattern() + "`): " + err.Error())
	}
	return re
}

// Index compiles pattern and returns the offset of its leftmost match in
// text, or -1. A pattern that does not compile matches nothing; use
// Compile to see the error.
func Index(text, pattern string) int {
	re, err := Compile(pattern)
	if err != nil {
		return -1
	}
	return re.IndexString(text)
}

// MatchString reports whether s contains a match of pattern. Unlike
// Index it returns compile errors.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// QuoteMeta returns a pattern that matches the literal text s by escaping
// every metacharacter: \ ^ $ . * + ? [ ]
//
// Example:
//
//	escaped := miniregex.QuoteMeta("1.5*2")
//	// escaped = `1\.5\*2`
func QuoteMeta(s string) string {
	const special = `\^$.*+?[]`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// Index returns the offset of the leftmost match in b, or -1.
//
// An empty match is reported at offset 0, but never at the end of a
// non-empty text: Index([]byte("abc")) for `z*$` is -1.
func (r *Regex) Index(b []byte) int {
	return r.engine.Find(b)
}

// IndexString is like Index but for a string.
func (r *Regex) IndexString(s string) int {
	return r.engine.Find([]byte(s))
}

// Match reports whether b contains a match.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s contains a match.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch([]byte(s))
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Prog returns the compiled program.
func (r *Regex) Prog() *syntax.Prog {
	return r.engine.Prog()
}

// Strategy returns the search strategy chosen for the program.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns a snapshot of the search statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}
