package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duarterr/miniregex/literal"
	"github.com/duarterr/miniregex/meta"
)

// maxShownPrefixes bounds the prefix list printed by explain.
const maxShownPrefixes = 8

func newExplainCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain PATTERN",
		Short: "Show the compiled program of a pattern and how it is searched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.explain(args[0])
		},
	}
}

func (a *app) explain(pattern string) error {
	engine, err := meta.Compile(pattern, a.cfg.Engine)
	if err != nil {
		return &ExitStatus{Code: ExitError, Err: err}
	}
	prog := engine.Prog()
	cfg := engine.Config()

	var b strings.Builder
	b.WriteString(prog.String())
	fmt.Fprintf(&b, "instructions: %d of %d\n", prog.Len(), cfg.MaxInstructions)
	fmt.Fprintf(&b, "class bytes:  %d of %d\n", prog.ClassBytes(), cfg.ClassBufferSize)
	fmt.Fprintf(&b, "strategy:     %s\n", engine.Strategy())

	if pf := engine.Prefilter(); pf != nil {
		prefixes := literal.New(literal.Config{
			MaxLiterals:       cfg.MaxPrefilterLiterals,
			MaxClassExpansion: cfg.MaxClassExpansion,
		}).ExtractPrefixes(prog)
		fmt.Fprintf(&b, "prefixes:     %s\n", formatPrefixes(prefixes))
		fmt.Fprintf(&b, "prefilter:    length %d, complete %t\n", pf.LiteralLen(), pf.IsComplete())
	}

	_, err = a.stdout.Write([]byte(b.String()))
	return err
}

func formatPrefixes(seq *literal.Seq) string {
	n := seq.Len()
	shown := make([]string, 0, maxShownPrefixes)
	for i := 0; i < n && i < maxShownPrefixes; i++ {
		shown = append(shown, strconv.Quote(string(seq.Get(i).Bytes)))
	}
	s := strings.Join(shown, " ")
	if n > maxShownPrefixes {
		s += fmt.Sprintf(" ... (%d total)", n)
	}
	return s
}
