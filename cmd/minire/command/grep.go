package command

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/duarterr/miniregex"
)

type grepOptions struct {
	lineNumbers bool
	count       bool
	invert      bool
	withName    bool
}

func newGrepCommand(a *app) *cobra.Command {
	var opts grepOptions
	cmd := &cobra.Command{
		Use:   "grep [flags] PATTERN [FILE...]",
		Short: "Print lines that contain a match.",
		Long: `Print the lines of each FILE that contain a match of PATTERN. With no
FILE, or when FILE is -, read standard input.

The exit status is 0 if a line was selected, 1 if none was and 2 if an
error occurred.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.grep(opts, args[0], args[1:])
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&opts.lineNumbers, "line-number", "n", false, "prefix each line with its line number")
	flags.BoolVarP(&opts.count, "count", "c", false, "print only a count of selected lines")
	flags.BoolVarP(&opts.invert, "invert-match", "v", false, "select lines that do not match")
	flags.BoolVarP(&opts.withName, "with-filename", "H", false, "prefix each line with the file name")
	return cmd
}

func (a *app) grep(opts grepOptions, pattern string, files []string) error {
	re, err := miniregex.CompileWithConfig(pattern, a.cfg.Engine)
	if err != nil {
		return &ExitStatus{Code: ExitError, Err: err}
	}
	a.logger.Debug("pattern compiled",
		zap.String("pattern", pattern),
		zap.Int("instructions", re.Prog().Len()),
		zap.Stringer("strategy", re.Strategy()))

	if len(files) == 0 {
		files = []string{"-"}
	}
	if len(files) > 1 {
		opts.withName = true
	}

	out := bufio.NewWriter(a.stdout)
	selected, failed := 0, false
	for _, name := range files {
		n, err := a.grepFile(out, re, opts, name)
		selected += n
		if err != nil {
			failed = true
			a.logger.Error("search failed", zap.String("file", name), zap.Error(err))
		}
	}
	if err := out.Flush(); err != nil {
		return &ExitStatus{Code: ExitError, Err: errors.Wrap(err, "write output")}
	}

	stats := re.Stats()
	a.logger.Debug("search finished",
		zap.Int("selected", selected),
		zap.Uint64("searches", stats.Searches),
		zap.Uint64("prefilter_candidates", stats.PrefilterCandidates),
		zap.Uint64("prefilter_confirmed", stats.PrefilterConfirmed),
		zap.Uint64("prefilter_abandoned", stats.PrefilterAbandoned))

	switch {
	case failed:
		return &ExitStatus{Code: ExitError}
	case selected == 0:
		return &ExitStatus{Code: ExitNoMatch}
	}
	return nil
}

func (a *app) grepFile(out *bufio.Writer, re *miniregex.Regex, opts grepOptions, name string) (int, error) {
	label := name
	var r io.Reader
	if name == "-" {
		label = "(standard input)"
		r = a.stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	br := bufio.NewReader(r)
	selected := 0
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			text := bytes.TrimSuffix(line, []byte{'\n'})
			if re.Match(text) != opts.invert {
				selected++
				if !opts.count {
					writeLine(out, opts, label, lineNo, text)
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return selected, errors.Wrapf(err, "read %s", label)
		}
	}

	if opts.count {
		if opts.withName {
			fmt.Fprintf(out, "%s:", label)
		}
		fmt.Fprintf(out, "%d\n", selected)
	}
	return selected, nil
}

func writeLine(out *bufio.Writer, opts grepOptions, label string, lineNo int, text []byte) {
	if opts.withName {
		out.WriteString(label)
		out.WriteByte(':')
	}
	if opts.lineNumbers {
		fmt.Fprintf(out, "%d:", lineNo)
	}
	out.Write(text)
	out.WriteByte('\n')
}
