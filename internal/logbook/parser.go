package logbook

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	fieldSeparator = "\t"
	commentPrefix  = "#"
)

// ParseRecord splits a log line on tabs and maps the fields positionally.
// Any count other than FieldCount yields a *ParseError.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != FieldCount {
		return Record{}, &ParseError{Got: len(fields)}
	}
	return Record{
		ID:            fields[0],
		Date:          fields[1],
		Location:      fields[2],
		Scope:         fields[3],
		Seeing:        fields[4],
		Transparency:  fields[5],
		Objects:       fields[6],
		Time:          fields[7],
		Eyepiece:      fields[8],
		Magnification: fields[9],
		Notes:         fields[10],
		Sketch:        fields[11],
	}, nil
}

func joinFields(fields []string) string {
	return strings.Join(fields, fieldSeparator)
}

func isComment(line string) bool {
	return strings.HasPrefix(line, commentPrefix)
}

// scanLines calls fn for every non-comment line with its 1-based line number.
// Lines have no length limit; a trailing "\n" or "\r\n" is stripped. Scanning
// stops at the first error fn returns.
func scanLines(r io.Reader, fn func(lineNumber int, line string) error) error {
	if r == nil {
		return nil
	}
	reader := bufio.NewReader(r)

	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}
		lineNumber++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !isComment(line) {
			if fnErr := fn(lineNumber, line); fnErr != nil {
				return fnErr
			}
		}
		if err != nil {
			return nil
		}
	}
}
