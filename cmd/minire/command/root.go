// Package command holds the minire command tree.
package command

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/duarterr/miniregex/internal/config"
	"github.com/duarterr/miniregex/internal/log"
)

// Exit codes, as in grep.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// ExitStatus is returned by a command that wants a specific exit code.
// Err, when set, is printed before exiting.
type ExitStatus struct {
	Code int
	Err  error
}

func (e *ExitStatus) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitStatus) Unwrap() error { return e.Err }

// app is the state shared by the subcommands of one root.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	cfg        config.Config
	logger     *zap.Logger
}

// NewRoot builds the minire command tree reading from stdin and writing
// to stdout and stderr.
func NewRoot(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "minire",
		Short:         "Search text with minimal regular expressions.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := log.New(cfg.Log, a.stderr)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			a.logger.Debug("configuration loaded",
				zap.String("file", a.configPath),
				zap.Int("max_instructions", cfg.Engine.MaxInstructions),
				zap.Int("class_buffer_size", cfg.Engine.ClassBufferSize),
				zap.Bool("prefilter", cfg.Engine.EnablePrefilter))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	def := config.Default()
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.Int("max-instructions", def.Engine.MaxInstructions, "instruction capacity of a compiled pattern, end marker included")
	flags.Int("class-buffer-size", def.Engine.ClassBufferSize, "byte budget shared by the character classes of a pattern")
	flags.Bool("no-prefilter", false, "always scan every offset instead of using prefix literals")
	flags.String("log-level", def.Log.Level, "log level: debug, info, warn, error")
	flags.String("log-format", def.Log.Format, "log format: console or json")
	flags.String("log-file", def.Log.File, "write logs to this file, rotated, instead of stderr")

	root.AddCommand(newGrepCommand(a), newExplainCommand(a), newGenCommand(a))
	return root
}

// Execute runs root and maps its outcome to a process exit code.
func Execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return ExitMatch
	}

	var status *ExitStatus
	if errors.As(err, &status) {
		if status.Err != nil {
			fmt.Fprintf(root.ErrOrStderr(), "minire: %v\n", status.Err)
		}
		return status.Code
	}
	fmt.Fprintf(root.ErrOrStderr(), "minire: %v\n", err)
	return ExitError
}
