package logbook

import "strings"

// recordLine builds a valid log line whose fields are derived from id.
func recordLine(id string) string {
	return strings.Join([]string{
		id, "2024-03-0" + id[len(id)-1:], "Dark site", "10in", "4", "3",
		"Object " + id, "22:00", "13mm", "92x", "notes for " + id, "sketch-" + id,
	}, "\t")
}
