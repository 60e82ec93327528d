package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/faizmokh/astrolog/internal/logbook"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newListCommand(a *app) *cobra.Command {
	var (
		logFlag   string
		idsFlag   string
		plainFlag bool
	)

	cmd := &cobra.Command{
		Use:   "list --log=FILE",
		Short: "List the observations in a log.",
		Long: "list prints every record of the log in file order. With --logIds only the selected " +
			"records are shown, in selection order. --plain prints bare ids, ready to paste into a log ids file.",
		Args: rejectPositional,
		RunE: func(cmd *cobra.Command, args []string) error {
			logPath, err := requirePath(cmd, "log", logFlag)
			if err != nil {
				return err
			}
			idsPath, err := optionalPath(idsFlag)
			if err != nil {
				return err
			}

			store, err := loadStore(a, logPath)
			if err != nil {
				return err
			}

			ids := store.IDs()
			if idsPath != "" {
				ids, err = logbook.LoadSelection(idsPath, store)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if plainFlag {
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			}
			if len(ids) == 0 {
				fmt.Fprintln(out, "No observations.")
				return nil
			}

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				r, _ := store.Get(id)
				rows = append(rows, []string{r.ID, r.Date, r.Objects, r.Location, r.Scope, r.Sketch})
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "DATE", "OBJECTS", "LOCATION", "SCOPE", "SKETCH").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return tableHeaderStyle
					}
					return tableCellStyle
				})
			fmt.Fprintln(out, t.Render())
			fmt.Fprintln(out, plural(len(ids), "observation", "observations"))
			return nil
		},
	}

	cmd.Flags().StringVar(&logFlag, "log", "", "Tab-separated observing log (required)")
	cmd.Flags().StringVar(&idsFlag, "logIds", "", "Only list ids from this file, in its order")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "Print one id per line without a table")

	return cmd
}
