package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/astrolog/internal/config"
	"github.com/faizmokh/astrolog/internal/logging"
)

// app carries state resolved once per invocation and shared by every command.
type app struct {
	configPath string
	verbose    bool
	logLevel   string

	cfg        *config.Config
	logger     *zap.Logger
	ownsLogger bool
}

// NewRootCommand creates the top-level Cobra command. The root command renders a
// report; subcommands inspect logs and build selections. A nil logger is built
// from configuration when the command runs.
func NewRootCommand(ctx context.Context, logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "astrolog --log=FILE --logIds=FILE --template=FILE --output=FILE [flags]",
		Short: "Render selected observing-log entries into an HTML report.",
		Long: "astrolog reads a tab-separated observing log, picks the entries listed in a log ids file, " +
			"and substitutes them into an HTML template at %OBSERVATIONS% (and the list name at %NAME%).",
		Args: rejectPositional,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ownsLogger && a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(ctx, cmd, a, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &ArgumentError{Err: err, Usage: c.UsageString()}
	})

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default: ~/.astrolog/config.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.register(cmd)

	cmd.AddCommand(
		newListCommand(a),
		newShowCommand(a),
		newCheckCommand(a),
		newPickCommand(ctx, a),
		newVersionCommand(),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return &ArgumentError{Err: err, Usage: cmd.UsageString()}
	}
	a.cfg = cfg

	if a.logger != nil {
		return nil
	}
	level := logging.ParseLevel(cfg.Logging.Level)
	if a.logLevel != "" {
		level = logging.ParseLevel(a.logLevel)
	}
	if a.verbose {
		level = zap.DebugLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	a.logger = logger
	a.ownsLogger = true
	return nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context, args []string) error {
	cmd := NewRootCommand(ctx, nil)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// Main is a helper used by cmd/astrolog/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	err := ExecuteCommand(ctx, os.Args[1:])
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	var argErr *ArgumentError
	if errors.As(err, &argErr) && argErr.Usage != "" {
		fmt.Fprintf(os.Stderr, "\n%s", argErr.Usage)
	}
	os.Exit(ExitCode(err))
}
