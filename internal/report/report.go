// Package report turns a selection of log records into a finished document by
// substituting rendered observations into a template.
package report

import (
	"fmt"
	"strings"

	"github.com/faizmokh/astrolog/internal/logbook"
)

const (
	// ObservationsToken is replaced by the rendered observations.
	ObservationsToken = "%OBSERVATIONS%"
	// NameToken is replaced by the list name.
	NameToken = "%NAME%"
)

// Defaults used when the caller leaves an option empty.
const (
	DefaultName           = "Observing List"
	DefaultImageDir       = "sketches"
	DefaultImageExtension = ".jpg"
)

// Options controls how records are rendered into the template.
type Options struct {
	Name           string
	ImageDir       string
	ImageExtension string
	Layout         logbook.Layout
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Name:           DefaultName,
		ImageDir:       DefaultImageDir,
		ImageExtension: DefaultImageExtension,
		Layout:         logbook.LayoutList,
	}
}

// Records looks up records by id. *logbook.Store satisfies it.
type Records interface {
	Get(id string) (logbook.Record, bool)
}

// Observations renders the selected records in order with no separator.
// Every id must be present in records; selections are validated on load, so a
// missing id panics.
func Observations(selection []string, records Records, opts Options) string {
	var b strings.Builder
	for _, id := range selection {
		record, ok := records.Get(id)
		if !ok {
			panic(fmt.Sprintf("report: selected id %q missing from log", id))
		}
		b.WriteString(opts.Layout.Render(record, opts.ImageDir, opts.ImageExtension))
	}
	return b.String()
}

// Render replaces every ObservationsToken in template with the rendered
// selection, then every NameToken with opts.Name.
func Render(template string, selection []string, records Records, opts Options) string {
	out := strings.ReplaceAll(template, ObservationsToken, Observations(selection, records, opts))
	return strings.ReplaceAll(out, NameToken, opts.Name)
}
