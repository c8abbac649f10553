// Package codegen writes Go source that declares precompiled patterns.
//
// Each pattern is compiled when the code is generated, so a pattern that
// exceeds its limits fails the generator instead of the program using it.
// The emitted file spells out the instruction list and rebuilds the
// program with syntax.MustNewProg at init time.
package codegen

import (
	"bytes"
	"go/token"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dave/jennifer/jen"

	"github.com/duarterr/miniregex/syntax"
)

const (
	rootPath   = "github.com/duarterr/miniregex"
	syntaxPath = "github.com/duarterr/miniregex/syntax"
)

// Named is a pattern bound to the variable that will hold it.
type Named struct {
	Name    string
	Pattern string
}

// Config describes one generated file.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Patterns are emitted in order, one variable each.
	Patterns []Named
	// Limits are used both to compile the patterns now and to rebuild
	// them in the generated code.
	Limits syntax.Limits
	// Generator names the tool in the "Code generated" header.
	Generator string
}

// Generate returns the formatted Go source for cfg.
func Generate(cfg Config) ([]byte, error) {
	if !token.IsIdentifier(cfg.Package) {
		return nil, errors.Newf("invalid package name %q", cfg.Package)
	}
	if len(cfg.Patterns) == 0 {
		return nil, errors.New("no patterns to generate")
	}
	generator := cfg.Generator
	if generator == "" {
		generator = "minire gen"
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by " + generator + ". DO NOT EDIT.")
	f.ImportName(rootPath, "miniregex")
	f.ImportName(syntaxPath, "syntax")

	seen := make(map[string]bool, len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		if !token.IsIdentifier(p.Name) || token.IsKeyword(p.Name) {
			return nil, errors.Newf("invalid variable name %q", p.Name)
		}
		if seen[p.Name] {
			return nil, errors.Newf("duplicate variable name %q", p.Name)
		}
		seen[p.Name] = true

		prog, err := syntax.Compile(p.Pattern, cfg.Limits)
		if err != nil {
			return nil, errors.Wrapf(err, "compile %s", p.Name)
		}

		f.Comment(p.Name + " is compiled from " + strconv.Quote(p.Pattern) + ".")
		f.Var().Id(p.Name).Op("=").Qual(rootPath, "MustFromProg").Call(
			jen.Qual(syntaxPath, "MustNewProg").Call(
				jen.Lit(p.Pattern),
				instList(prog),
				limitsLit(cfg.Limits),
			),
		)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errors.Wrap(err, "render generated code")
	}
	return buf.Bytes(), nil
}

func instList(prog *syntax.Prog) jen.Code {
	return jen.Index().Qual(syntaxPath, "Inst").ValuesFunc(func(g *jen.Group) {
		for i := 0; i < prog.Len(); i++ {
			g.Line().Add(instExpr(prog.At(i)))
		}
		g.Line()
	})
}

func instExpr(inst syntax.Inst) jen.Code {
	switch inst.Op() {
	case syntax.OpLiteral:
		b, _ := inst.Byte()
		return jen.Qual(syntaxPath, "Literal").Call(jen.Lit(b))
	case syntax.OpCharClass, syntax.OpNegatedCharClass:
		cls, _ := inst.Class()
		ctor := "CharClass"
		if inst.Op() == syntax.OpNegatedCharClass {
			ctor = "NegatedCharClass"
		}
		return jen.Qual(syntaxPath, ctor).Call(
			jen.Qual(syntaxPath, "NewClass").Call(jen.Lit(cls.String())),
		)
	default:
		return jen.Qual(syntaxPath, "Simple").Call(jen.Qual(syntaxPath, "Op"+inst.Op().String()))
	}
}

func limitsLit(limits syntax.Limits) jen.Code {
	return jen.Qual(syntaxPath, "Limits").Values(jen.Dict{
		jen.Id("MaxInstructions"): jen.Lit(limits.MaxInstructions),
		jen.Id("ClassBufferSize"): jen.Lit(limits.ClassBufferSize),
	})
}
