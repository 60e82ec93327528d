package logbook

import (
	"strings"
)

// Layout picks how a record is rendered to HTML.
type Layout string

const (
	// LayoutList renders metadata as a bullet list next to the sketch.
	LayoutList Layout = "list"
	// LayoutTable renders metadata as a two-column table with paired fields.
	LayoutTable Layout = "table"
)

// ParseLayout accepts "list" or "table"; empty means LayoutList.
func ParseLayout(value string) (Layout, bool) {
	switch Layout(strings.ToLower(strings.TrimSpace(value))) {
	case "", LayoutList:
		return LayoutList, true
	case LayoutTable:
		return LayoutTable, true
	default:
		return "", false
	}
}

// Render dispatches to RenderFragment or RenderTable.
func (l Layout) Render(r Record, imageDir, imageExtension string) string {
	if l == LayoutTable {
		return RenderTable(r, imageDir, imageExtension)
	}
	return RenderFragment(r, imageDir, imageExtension)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
)

// EscapeHTML escapes the five HTML-special characters. Entities produced by the
// replacement are never escaped again.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type metadataField struct {
	label string
	value string
}

func (r Record) metadata() []metadataField {
	return []metadataField{
		{"Date", r.Date},
		{"Time", r.Time},
		{"Location", r.Location},
		{"Scope", r.Scope},
		{"Seeing", r.Seeing},
		{"Transparency", r.Transparency},
		{"Eyepiece", r.Eyepiece},
		{"Magnification", r.Magnification},
	}
}

// ImageSource is the sketch reference used by both layouts.
func ImageSource(r Record, imageDir, imageExtension string) string {
	return imageDir + "/" + r.Sketch + imageExtension
}

// RenderFragment renders r as an observation block. The object label is trusted
// and written verbatim; notes are escaped. Each metadata field is listed only
// when it is not blank.
func RenderFragment(r Record, imageDir, imageExtension string) string {
	var info strings.Builder
	for _, field := range r.metadata() {
		if isBlank(field.value) {
			continue
		}
		info.WriteString("<li>")
		info.WriteString(field.label)
		info.WriteString(": ")
		info.WriteString(field.value)
		info.WriteString("</li> ")
	}

	var b strings.Builder
	b.Grow(256 + len(r.Objects) + len(r.Notes) + info.Len())
	b.WriteString("<div class=observation>\n")
	b.WriteString("    <div class=notes>\n")
	b.WriteString("        <div class=objname>" + r.Objects + "</div>\n")
	b.WriteString("        <ul>\n")
	b.WriteString("            " + info.String() + "\n")
	b.WriteString("        </ul>\n")
	b.WriteString("        " + EscapeHTML(r.Notes) + "\n")
	b.WriteString("    </div>\n")
	b.WriteString("    <div class=sketch>\n")
	b.WriteString(`        <img src="` + ImageSource(r, imageDir, imageExtension) + `">` + "\n")
	b.WriteString("    </div>\n")
	b.WriteString("</div>")
	return b.String()
}

// RenderTable renders r in the older table layout. Fields are paired per row and
// a row is kept when either side has a value; the table and the notes block are
// dropped entirely when empty.
func RenderTable(r Record, imageDir, imageExtension string) string {
	pairs := r.metadata()

	var rows []string
	for i := 0; i+1 < len(pairs); i += 2 {
		left, right := pairs[i], pairs[i+1]
		if isBlank(left.value) && isBlank(right.value) {
			continue
		}
		// Only the date/time row separates its cells with a space.
		sep := ""
		if i == 0 {
			sep = " "
		}
		rows = append(rows, "<tr><td>"+left.label+": "+left.value+"</td>"+sep+"<td>"+
			right.label+": "+right.value+"</td></tr>")
	}

	var b strings.Builder
	b.WriteString("<div class=observation>\n")
	b.WriteString("    <div class=objname>\n")
	b.WriteString("    " + r.Objects + "\n")
	b.WriteString("    </div>\n")
	if len(rows) > 0 {
		b.WriteString("    <table>\n")
		for _, row := range rows {
			b.WriteString("    " + row + "\n")
		}
		b.WriteString("    </table>\n")
	}
	b.WriteString(`    <img src="` + ImageSource(r, imageDir, imageExtension) + `">` + "\n")
	if !isBlank(r.Notes) {
		b.WriteString("    <div class=notes>\n")
		b.WriteString("    " + EscapeHTML(r.Notes) + "\n")
		b.WriteString("    </div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}
