package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/astrolog/internal/files"
	"github.com/faizmokh/astrolog/internal/logbook"
	"github.com/faizmokh/astrolog/internal/report"
)

type generateFlags struct {
	render   renderFlags
	log      string
	logIDs   string
	template string
	output   string
	format   string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.log, "log", "", "Tab-separated observing log (required)")
	cmd.Flags().StringVar(&f.logIDs, "logIds", "", "File listing the log ids to render, one per line (required)")
	cmd.Flags().StringVar(&f.template, "template", "", "HTML template containing %OBSERVATIONS% and %NAME% (required)")
	cmd.Flags().StringVar(&f.output, "output", "", "Output file, overwritten if present (required)")
	cmd.Flags().StringVar(&f.format, "format", string(report.FormatHTML), "Output format: html or markdown")
	f.render.register(cmd, true)
}

func runGenerate(ctx context.Context, cmd *cobra.Command, a *app, f *generateFlags) error {
	logPath, err := requirePath(cmd, "log", f.log)
	if err != nil {
		return err
	}
	idsPath, err := requirePath(cmd, "logIds", f.logIDs)
	if err != nil {
		return err
	}
	templatePath, err := requirePath(cmd, "template", f.template)
	if err != nil {
		return err
	}
	outputPath, err := requirePath(cmd, "output", f.output)
	if err != nil {
		return err
	}

	opts, err := f.render.options(cmd, a)
	if err != nil {
		return err
	}
	merged := a.cfg.Report
	if cmd.Flags().Changed("format") {
		merged.Format = f.format
	}
	format, err := merged.ParseFormat()
	if err != nil {
		return &ArgumentError{Err: err, Usage: cmd.UsageString()}
	}

	store, err := loadStore(a, logPath)
	if err != nil {
		return err
	}
	ids, err := logbook.LoadSelection(idsPath, store)
	if err != nil {
		return err
	}
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	a.logger.Debug("rendering report",
		zap.Int("entries", len(ids)),
		zap.String("layout", string(opts.Layout)),
		zap.String("format", string(format)))

	document, err := report.Encode(report.Render(string(template), ids, store, opts), format)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := files.WriteAtomic(outputPath, []byte(document)); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", plural(len(ids), "entry", "entries"), outputPath)
	return nil
}
