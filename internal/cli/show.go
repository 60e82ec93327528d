package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/astrolog/internal/logbook"
)

func newShowCommand(a *app) *cobra.Command {
	var (
		logFlag string
		render  renderFlags
	)

	cmd := &cobra.Command{
		Use:   "show --log=FILE <id>...",
		Short: "Print the rendered HTML for one or more observations.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return argumentError(cmd.UsageString(), "at least one log id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logPath, err := requirePath(cmd, "log", logFlag)
			if err != nil {
				return err
			}
			opts, err := render.options(cmd, a)
			if err != nil {
				return err
			}
			store, err := loadStore(a, logPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range args {
				record, ok := store.Get(id)
				if !ok {
					return &logbook.ValidationError{ID: id}
				}
				fmt.Fprintln(out, opts.Layout.Render(record, opts.ImageDir, opts.ImageExtension))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFlag, "log", "", "Tab-separated observing log (required)")
	render.register(cmd, false)

	return cmd
}
