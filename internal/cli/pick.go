package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/astrolog/internal/logbook"
	"github.com/faizmokh/astrolog/internal/ui"
)

func newPickCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		logFlag    string
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "pick --log=FILE --output=FILE",
		Short: "Interactively choose observations and write a log ids file.",
		Long: "pick opens a terminal picker over the log. Entries are written in the order they were " +
			"selected. An existing output file seeds the selection.",
		Args: rejectPositional,
		RunE: func(cmd *cobra.Command, args []string) error {
			logPath, err := requirePath(cmd, "log", logFlag)
			if err != nil {
				return err
			}
			outputPath, err := requirePath(cmd, "output", outputFlag)
			if err != nil {
				return err
			}

			store, err := loadStore(a, logPath)
			if err != nil {
				return err
			}
			initial, err := logbook.LoadSelection(outputPath, store)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			program := tea.NewProgram(
				ui.NewModel(store, outputPath, initial),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}

			model, ok := final.(ui.Model)
			if !ok {
				return nil
			}
			if saved, count := model.Saved(); saved {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", plural(count, "id", "ids"), outputPath)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes written.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFlag, "log", "", "Tab-separated observing log (required)")
	cmd.Flags().StringVar(&outputFlag, "output", "", "Log ids file to write (required)")

	return cmd
}
