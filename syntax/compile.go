package syntax

import "fmt"

// Compile compiles pattern with the given limits.
//
// Compilation is a single left-to-right pass. It fails with an *Error
// wrapping ErrPatternTooLong when the pattern needs more than
// limits.MaxInstructions slots, or ErrClassBufferOverflow when its classes
// do not fit in limits.ClassBufferSize bytes. Nothing is truncated.
func Compile(pattern string, limits Limits) (*Prog, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	c := compiler{
		pattern:    pattern,
		limits:     limits,
		classBytes: 1,
	}
	if err := c.compile(); err != nil {
		return nil, err
	}
	c.insts = append(c.insts, Simple(OpEnd))
	return &Prog{insts: c.insts, pattern: pattern, classBytes: c.classBytes}, nil
}

// MustCompile is like Compile with DefaultLimits but panics on error.
func MustCompile(pattern string) *Prog {
	p, err := Compile(pattern, DefaultLimits())
	if err != nil {
		panic(err)
	}
	return p
}

type compiler struct {
	pattern    string
	limits     Limits
	insts      []Inst
	classBytes int
}

func (c *compiler) compile() error {
	pattern := c.pattern
	for i := 0; i < len(pattern); i++ {
		// One slot always stays free for the terminating OpEnd.
		if len(c.insts)+1 >= c.limits.MaxInstructions {
			return newError(CodePatternTooLong, pattern, i,
				fmt.Sprintf("limit %d instructions", c.limits.MaxInstructions))
		}

		switch ch := pattern[i]; ch {
		case '^':
			c.emit(Simple(OpStartAnchor))
		case '$':
			c.emit(Simple(OpEndAnchor))
		case '.':
			c.emit(Simple(OpAnyChar))
		case '*':
			c.emit(Simple(OpZeroOrMore))
		case '+':
			c.emit(Simple(OpOneOrMore))
		case '?':
			c.emit(Simple(OpZeroOrOne))
		case '\\':
			if i+1 >= len(pattern) {
				// A trailing backslash stands for itself.
				c.emit(Literal('\\'))
				continue
			}
			i++
			c.emit(escape(pattern[i]))
		case '[':
			next, err := c.class(i)
			if err != nil {
				return err
			}
			i = next
		default:
			c.emit(Literal(ch))
		}
	}
	return nil
}

func (c *compiler) emit(inst Inst) {
	c.insts = append(c.insts, inst)
}

// escape returns the instruction for `\` followed by ch.
func escape(ch byte) Inst {
	switch ch {
	case 'd':
		return Simple(OpDigit)
	case 'D':
		return Simple(OpNotDigit)
	case 'w':
		return Simple(OpWord)
	case 'W':
		return Simple(OpNotWord)
	case 's':
		return Simple(OpWhitespace)
	case 'S':
		return Simple(OpNotWhitespace)
	default:
		return Literal(ch)
	}
}

// class compiles the class opening at pattern[open] and returns the index
// of its closing ']', or the last index of the pattern if it is unterminated.
func (c *compiler) class(open int) (int, error) {
	pattern := c.pattern
	negated := false
	i := open + 1
	if i < len(pattern) && pattern[i] == '^' {
		negated = true
		i++
	}

	start := i
	for i < len(pattern) && pattern[i] != ']' {
		if pattern[i] == '\\' && i+1 < len(pattern) {
			// Keep the escape raw; the matcher interprets it.
			i++
		}
		i++
	}
	raw := pattern[start:i]

	c.classBytes += classCost(len(raw))
	if c.classBytes > c.limits.ClassBufferSize {
		return 0, newError(CodeClassBufferOverflow, pattern, open,
			fmt.Sprintf("limit %d bytes", c.limits.ClassBufferSize))
	}

	cls := NewClass(raw)
	if negated {
		c.emit(NegatedCharClass(cls))
	} else {
		c.emit(CharClass(cls))
	}

	if i >= len(pattern) {
		return len(pattern) - 1, nil
	}
	return i, nil
}
