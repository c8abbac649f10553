package miniregex_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/duarterr/miniregex"
	"github.com/duarterr/miniregex/syntax"
)

func Example() {
	re := miniregex.MustCompile(`[0-9]+\.[0-9]+`)
	fmt.Println(re.IndexString("version 1.25"))
	fmt.Println(re.MatchString("no numbers"))

	// Output:
	// 8
	// false
}

func ExampleIndex() {
	fmt.Println(miniregex.Index("xxabcxx", "abc"))
	fmt.Println(miniregex.Index("xabc", "^abc$"))
	fmt.Println(miniregex.Index("", "a?"))

	// Output:
	// 2
	// -1
	// 0
}

func ExampleCompile_errors() {
	_, err := miniregex.Compile(strings.Repeat("a", 30))
	fmt.Println(errors.Is(err, syntax.ErrPatternTooLong))

	_, err = miniregex.Compile("[" + strings.Repeat("x", 39) + "]")
	fmt.Println(errors.Is(err, syntax.ErrClassBufferOverflow))

	// Output:
	// true
	// true
}

func ExampleCompileWithConfig() {
	config := miniregex.DefaultConfig()
	config.MaxInstructions = 64

	re, err := miniregex.CompileWithConfig(strings.Repeat("ab", 20), config)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(re.Prog().Len())

	// Output:
	// 41
}

func ExampleQuoteMeta() {
	fmt.Println(miniregex.QuoteMeta("1.5*2"))

	// Output:
	// 1\.5\*2
}

func ExampleRegex_Prog() {
	fmt.Print(miniregex.MustCompile(`^a[0-9]+$`).Prog())

	// Output:
	//   0  StartAnchor
	//   1  Literal('a')
	//   2  CharClass("0-9")
	//   3  OneOrMore
	//   4  EndAnchor
	//   5  End
}
