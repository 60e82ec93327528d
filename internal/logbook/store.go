package logbook

import (
	"fmt"
	"io"
	"os"
)

// Store holds every record of a log file keyed by id. It is read-only once loaded.
type Store struct {
	records    map[string]Record
	order      []string
	duplicates []string
}

// ReadStore parses records from r. Comment lines are skipped; the first line that
// fails to parse aborts the load with a *LineError. A later record with an id
// already seen replaces the earlier one.
func ReadStore(r io.Reader) (*Store, error) {
	s := &Store{records: make(map[string]Record)}
	err := scanLines(r, func(lineNumber int, line string) error {
		record, err := ParseRecord(line)
		if err != nil {
			return &LineError{Line: lineNumber, Err: err}
		}
		s.put(record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// LoadStore opens path and reads it with ReadStore.
func LoadStore(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := ReadStore(file)
	if err != nil {
		return nil, fmt.Errorf("read log %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) put(record Record) {
	if _, ok := s.records[record.ID]; ok {
		s.duplicates = append(s.duplicates, record.ID)
	} else {
		s.order = append(s.order, record.ID)
	}
	s.records[record.ID] = record
}

// Get returns the record stored under id.
func (s *Store) Get(id string) (Record, bool) {
	record, ok := s.records[id]
	return record, ok
}

// Has reports whether id is present.
func (s *Store) Has(id string) bool {
	_, ok := s.records[id]
	return ok
}

// Len is the number of distinct ids.
func (s *Store) Len() int {
	return len(s.records)
}

// IDs returns the distinct ids in the order they first appeared in the file.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Records returns the stored records ordered like IDs.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Duplicates lists ids that appeared more than once, once per extra occurrence.
func (s *Store) Duplicates() []string {
	out := make([]string, len(s.duplicates))
	copy(out, s.duplicates)
	return out
}
