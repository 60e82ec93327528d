package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/astrolog/internal/logbook"
	"github.com/faizmokh/astrolog/internal/report"
)

func newCheckCommand(a *app) *cobra.Command {
	var (
		logFlag      string
		idsFlag      string
		templateFlag string
	)

	cmd := &cobra.Command{
		Use:   "check --log=FILE [--logIds=FILE] [--template=FILE]",
		Short: "Validate inputs without writing a report.",
		Args:  rejectPositional,
		RunE: func(cmd *cobra.Command, args []string) error {
			logPath, err := requirePath(cmd, "log", logFlag)
			if err != nil {
				return err
			}
			idsPath, err := optionalPath(idsFlag)
			if err != nil {
				return err
			}
			templatePath, err := optionalPath(templateFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			store, err := loadStore(a, logPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "log: %s (%s)\n", logPath, plural(store.Len(), "record", "records"))
			for _, id := range store.Duplicates() {
				fmt.Fprintf(out, "  duplicate id %q: last occurrence wins\n", id)
			}

			if idsPath != "" {
				ids, err := logbook.LoadSelection(idsPath, store)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "log ids: %s (%s selected)\n", idsPath, plural(len(ids), "entry", "entries"))
			}

			if templatePath != "" {
				data, err := os.ReadFile(templatePath)
				if err != nil {
					return fmt.Errorf("read template: %w", err)
				}
				info := report.InspectTemplate(string(data))
				fmt.Fprintf(out, "template: %s (%s x%d, %s x%d)\n", templatePath,
					report.ObservationsToken, info.Observations, report.NameToken, info.Names)
				if info.Title != "" {
					fmt.Fprintf(out, "  title: %s\n", info.Title)
				}
				if info.Observations == 0 {
					fmt.Fprintf(out, "  warning: no %s placeholder, observations will not appear\n", report.ObservationsToken)
				}
			}

			if err := a.cfg.Validate(); err != nil {
				fmt.Fprintf(out, "config: warning: %v unless overridden by a flag\n", err)
			}

			fmt.Fprintln(out, "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&logFlag, "log", "", "Tab-separated observing log (required)")
	cmd.Flags().StringVar(&idsFlag, "logIds", "", "Log ids file to validate against the log")
	cmd.Flags().StringVar(&templateFlag, "template", "", "Template to inspect for placeholders")

	return cmd
}
