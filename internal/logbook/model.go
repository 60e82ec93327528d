package logbook

// FieldCount is the number of tab-separated fields in every record line.
const FieldCount = 12

// Record is one observation from the tab-separated log. Every field is kept as
// the raw text found in the file.
type Record struct {
	ID            string
	Date          string
	Location      string
	Scope         string
	Seeing        string
	Transparency  string
	Objects       string
	Time          string
	Eyepiece      string
	Magnification string
	Notes         string
	Sketch        string
}

// Fields returns the record in log-file column order.
func (r Record) Fields() []string {
	return []string{
		r.ID, r.Date, r.Location, r.Scope, r.Seeing, r.Transparency,
		r.Objects, r.Time, r.Eyepiece, r.Magnification, r.Notes, r.Sketch,
	}
}

// Line formats the record back into a log-file line.
func (r Record) Line() string {
	return joinFields(r.Fields())
}
