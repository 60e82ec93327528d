package logbook

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/faizmokh/astrolog/internal/files"
)

// IDSet answers membership questions about record ids. *Store satisfies it.
type IDSet interface {
	Has(id string) bool
}

// ReadSelection reads one id per line, trimming surrounding whitespace and
// skipping comment lines. The first id missing from known aborts with a
// *ValidationError. Order and duplicates are preserved.
func ReadSelection(r io.Reader, known IDSet) ([]string, error) {
	var ids []string
	err := scanLines(r, func(lineNumber int, line string) error {
		id := strings.TrimSpace(line)
		if known == nil || !known.Has(id) {
			return &ValidationError{ID: id, Line: lineNumber}
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// LoadSelection opens path and reads it with ReadSelection.
func LoadSelection(path string, known IDSet) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ids, err := ReadSelection(file, known)
	if err != nil {
		return nil, fmt.Errorf("read log ids %s: %w", path, err)
	}
	return ids, nil
}

// FormatSelection renders ids as a selection file. Each header line is written
// as a comment above the ids.
func FormatSelection(ids []string, header ...string) string {
	var b strings.Builder
	for _, line := range header {
		b.WriteString(commentPrefix)
		if line != "" {
			b.WriteByte(' ')
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	for _, id := range ids {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteSelection atomically replaces path with a selection file listing ids.
func WriteSelection(path string, ids []string, header ...string) error {
	if err := files.WriteAtomic(path, []byte(FormatSelection(ids, header...))); err != nil {
		return fmt.Errorf("write log ids %s: %w", path, err)
	}
	return nil
}
