package report

import "testing"

func TestInspectTemplate(t *testing.T) {
	info := InspectTemplate(`<html><head><title> %NAME% </title></head><body><h1>%NAME%</h1>%OBSERVATIONS%</body></html>`)

	if info.Observations != 1 {
		t.Fatalf("Observations = %d, want 1", info.Observations)
	}
	if info.Names != 2 {
		t.Fatalf("Names = %d, want 2", info.Names)
	}
	if info.Title != "%NAME%" {
		t.Fatalf("Title = %q, want %q", info.Title, "%NAME%")
	}
}

func TestInspectTemplateWithoutTitleOrTokens(t *testing.T) {
	info := InspectTemplate("<p>nothing here</p>")
	if info != (TemplateInfo{}) {
		t.Fatalf("InspectTemplate = %+v, want zero value", info)
	}
}
