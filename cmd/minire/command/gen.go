package command

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/duarterr/miniregex/internal/codegen"
)

func newGenCommand(a *app) *cobra.Command {
	var pkg, out string
	cmd := &cobra.Command{
		Use:   "gen [flags] NAME=PATTERN...",
		Short: "Generate Go source declaring precompiled patterns.",
		Long: `Compile each PATTERN now and write a Go file declaring a package
variable NAME holding it. A pattern that does not compile fails the
generator, not the program that uses the generated code.`,
		Example: `  minire gen --package filters --out filters_gen.go 'Version=\d+\.\d+' 'Word=\w+'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.gen(pkg, out, args)
		},
	}
	cmd.Flags().StringVar(&pkg, "package", "main", "package clause of the generated file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default standard output)")
	return cmd
}

func (a *app) gen(pkg, out string, args []string) error {
	patterns := make([]codegen.Named, 0, len(args))
	for _, arg := range args {
		name, pattern, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.Newf("argument %q is not NAME=PATTERN", arg)
		}
		patterns = append(patterns, codegen.Named{Name: name, Pattern: pattern})
	}

	src, err := codegen.Generate(codegen.Config{
		Package:  pkg,
		Patterns: patterns,
		Limits:   a.cfg.Engine.Limits(),
	})
	if err != nil {
		return err
	}

	if out == "" {
		_, err = a.stdout.Write(src)
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}
	a.logger.Info("generated", zap.String("file", out), zap.Int("patterns", len(patterns)))
	return nil
}
