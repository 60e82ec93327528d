package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/astrolog/internal/files"
	"github.com/faizmokh/astrolog/internal/logbook"
	"github.com/faizmokh/astrolog/internal/report"
)

// rejectPositional turns stray tokens (anything that is not a --key=value flag)
// into argument errors.
func rejectPositional(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return argumentError(cmd.UsageString(), "couldn't parse %q (expected --key=value)", args[0])
	}
	return nil
}

// requirePath expands value and fails with an argument error when it is empty.
func requirePath(cmd *cobra.Command, flag, value string) (string, error) {
	if value == "" {
		return "", argumentError(cmd.UsageString(), "--%s file not specified", flag)
	}
	return files.ExpandHome(value)
}

// optionalPath expands value, passing empty through.
func optionalPath(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	return files.ExpandHome(value)
}

// renderFlags are shared by every command that renders records.
type renderFlags struct {
	name           string
	imageDir       string
	imageExtension string
	layout         string
}

func (f *renderFlags) register(cmd *cobra.Command, withName bool) {
	if withName {
		cmd.Flags().StringVar(&f.name, "name", report.DefaultName, "Name of the list, substituted for %NAME%")
	}
	cmd.Flags().StringVar(&f.imageDir, "imageDir", report.DefaultImageDir, "Directory of sketch images")
	cmd.Flags().StringVar(&f.imageExtension, "imageExtension", report.DefaultImageExtension, "Extension appended to sketch names")
	cmd.Flags().StringVar(&f.layout, "layout", string(logbook.LayoutList), "Observation layout: list or table")
}

// options starts from configuration and applies the flags the user set. The
// merged values are validated only after the flags win.
func (f *renderFlags) options(cmd *cobra.Command, a *app) (report.Options, error) {
	merged := a.cfg.Report
	changed := cmd.Flags().Changed

	if changed("name") {
		merged.Name = f.name
	}
	if changed("imageDir") {
		merged.ImageDir = f.imageDir
	}
	if changed("imageExtension") {
		merged.ImageExtension = f.imageExtension
	}
	if changed("layout") {
		merged.Layout = f.layout
	}
	opts, err := merged.Options()
	if err != nil {
		return report.Options{}, &ArgumentError{Err: err, Usage: cmd.UsageString()}
	}
	return opts, nil
}

// loadStore reads the log and warns about ids that occur more than once.
func loadStore(a *app, path string) (*logbook.Store, error) {
	store, err := logbook.LoadStore(path)
	if err != nil {
		return nil, err
	}
	for _, id := range store.Duplicates() {
		a.logger.Warn("duplicate log id, last occurrence wins", zap.String("id", id), zap.String("log", path))
	}
	a.logger.Debug("loaded log", zap.String("path", path), zap.Int("records", store.Len()))
	return store, nil
}

func plural(count int, singular, many string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, many)
}
