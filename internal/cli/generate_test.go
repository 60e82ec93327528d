package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faizmokh/astrolog/internal/logbook"
)

func TestGenerateRendersSelectionInOrder(t *testing.T) {
	f := newFixture(t, "# tonight\nA\n  B  \n")

	out := executeCommand(t, newTestRoot(nil), f.args("--name=Test")...)
	assertContains(t, out, "wrote 2 entries to "+f.output)

	got := readTestFile(t, f.output)
	if !strings.HasPrefix(got, "<html><div class=observation>") {
		t.Fatalf("output should start with the first fragment:\n%s", got)
	}
	if !strings.HasSuffix(got, "</div></html> Test") {
		t.Fatalf("output should end with the name:\n%s", got)
	}
	a, b := strings.Index(got, "<div class=objname>M42</div>"), strings.Index(got, "<div class=objname>M1</div>")
	if a < 0 || b < 0 || a > b {
		t.Fatalf("expected A before B:\n%s", got)
	}
	assertContains(t, got, "Trapezium &lt;E&gt; &amp; &quot;F&quot;")
	assertContains(t, got, `<img src="sketches/m42.jpg">`)
	assertContains(t, got, "<li>Date: 2024-01-12</li> <li>Time: 23:10</li>")
}

func TestGenerateImageOptions(t *testing.T) {
	f := newFixture(t, "A\n")

	executeCommand(t, newTestRoot(nil), f.args("--imageDir=pics", "--imageExtension=.png")...)
	assertContains(t, readTestFile(t, f.output), `<img src="pics/m42.png">`)
}

func TestGenerateSpaceSeparatedFlagsAndTilde(t *testing.T) {
	f := newFixture(t, "B\n")
	home := os.Getenv("HOME")
	writeTestFile(t, filepath.Join(home, "log.tsv"), fixtureLog)

	out := executeCommand(t, newTestRoot(nil),
		"--log", "~/log.tsv",
		"--logIds", f.ids,
		"--template", f.template,
		"--output", f.output,
	)
	assertContains(t, out, "wrote 1 entry to")
	assertContains(t, readTestFile(t, f.output), "M1")
}

func TestGenerateUnknownIDLeavesOutputUntouched(t *testing.T) {
	f := newFixture(t, "A\n# skip\nZ\n")
	writeTestFile(t, f.output, "previous report")

	_, err := executeCommandErr(t, newTestRoot(nil), f.args()...)
	var validationErr *logbook.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want *logbook.ValidationError", err)
	}
	if validationErr.ID != "Z" || validationErr.Line != 3 {
		t.Fatalf("ValidationError = %+v, want Z on line 3", validationErr)
	}
	if ExitCode(err) != ExitValidation {
		t.Fatalf("ExitCode = %d, want %d", ExitCode(err), ExitValidation)
	}
	if got := readTestFile(t, f.output); got != "previous report" {
		t.Fatalf("output modified: %q", got)
	}
}

func TestGenerateUnknownIDDoesNotCreateOutput(t *testing.T) {
	f := newFixture(t, "nope\n")

	executeCommandErr(t, newTestRoot(nil), f.args()...)
	if _, err := os.Stat(f.output); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("output should not exist, stat err = %v", err)
	}
}

func TestGenerateParseErrorReportsLine(t *testing.T) {
	f := newFixture(t, "A\n")
	writeTestFile(t, f.log, fixtureLog+"C\tonly\tthree\n")

	_, err := executeCommandErr(t, newTestRoot(nil), f.args()...)
	if !errors.Is(err, logbook.ErrFieldCount) {
		t.Fatalf("error = %v, want ErrFieldCount", err)
	}
	assertContains(t, err.Error(), "on line 4")
	if ExitCode(err) != ExitParse {
		t.Fatalf("ExitCode = %d, want %d", ExitCode(err), ExitParse)
	}
}

func TestGenerateMissingRequiredFlag(t *testing.T) {
	f := newFixture(t, "A\n")

	for _, missing := range []string{"log", "logIds", "template", "output"} {
		var args []string
		for _, arg := range f.args() {
			if !strings.HasPrefix(arg, "--"+missing+"=") {
				args = append(args, arg)
			}
		}
		_, err := executeCommandErr(t, newTestRoot(nil), args...)
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("missing --%s: error = %v, want *ArgumentError", missing, err)
		}
		assertContains(t, err.Error(), "--"+missing+" file not specified")
		assertContains(t, argErr.Usage, "--template")
	}
}

func TestGenerateRejectsUnknownAndMalformedArguments(t *testing.T) {
	f := newFixture(t, "A\n")

	tests := [][]string{
		f.args("--colour=red"),
		f.args("name=Test"),
		f.args("--layout=grid"),
		f.args("--format=pdf"),
	}
	for _, args := range tests {
		_, err := executeCommandErr(t, newTestRoot(nil), args...)
		if ExitCode(err) != ExitArgument {
			t.Fatalf("args %q: ExitCode = %d (%v), want %d", args, ExitCode(err), err, ExitArgument)
		}
	}
}

func TestGenerateMissingTemplateIsIOError(t *testing.T) {
	f := newFixture(t, "A\n")
	os.Remove(f.template)

	_, err := executeCommandErr(t, newTestRoot(nil), f.args()...)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
	if ExitCode(err) != ExitIO {
		t.Fatalf("ExitCode = %d, want %d", ExitCode(err), ExitIO)
	}
}

func TestGenerateTableLayoutAndMarkdown(t *testing.T) {
	f := newFixture(t, "A\n")
	writeTestFile(t, f.template, "<html><body><h1>%NAME%</h1>%OBSERVATIONS%</body></html>")

	executeCommand(t, newTestRoot(nil), f.args("--layout=table", "--format=markdown", "--name=Winter")...)

	got := readTestFile(t, f.output)
	assertContains(t, got, "# Winter")
	assertContains(t, got, "M42")
	assertNotContains(t, got, "<div")
}

func TestGenerateConfigDefaultsAndFlagPrecedence(t *testing.T) {
	f := newFixture(t, "A\n")
	configPath := filepath.Join(f.dir, "astrolog.yaml")
	writeTestFile(t, configPath, "report:\n  name: From Config\n  image_dir: cfg-dir\n  image_extension: .gif\n")
	t.Setenv("ASTROLOG_IMAGE_EXTENSION", ".webp")

	executeCommand(t, newTestRoot(nil), f.args("--config="+configPath)...)
	got := readTestFile(t, f.output)
	assertContains(t, got, "From Config")
	assertContains(t, got, `<img src="cfg-dir/m42.webp">`)

	executeCommand(t, newTestRoot(nil), f.args("--config="+configPath, "--imageDir=flag-dir", "--name=From Flag")...)
	got = readTestFile(t, f.output)
	assertContains(t, got, "From Flag")
	assertContains(t, got, `<img src="flag-dir/m42.webp">`)
}

func TestGenerateWarnsOnDuplicateIDs(t *testing.T) {
	f := newFixture(t, "A\n")
	writeTestFile(t, f.log, fixtureLog+"A\t\t\t\t\t\tReplaced\t\t\t\t\tr\n")
	logger, logs := newObservedLogger()

	executeCommand(t, newTestRoot(logger), f.args()...)

	assertContains(t, readTestFile(t, f.output), "Replaced")
	warnings := logs.FilterMessage("duplicate log id, last occurrence wins")
	if warnings.Len() != 1 {
		t.Fatalf("duplicate warnings = %d, want 1", warnings.Len())
	}
	if got := warnings.All()[0].ContextMap()["id"]; got != "A" {
		t.Fatalf("warning id = %v, want A", got)
	}
}

func TestGenerateFlagsOverrideInvalidEnvironment(t *testing.T) {
	f := newFixture(t, "A\n")
	t.Setenv("ASTROLOG_FORMAT", "pdf")
	t.Setenv("ASTROLOG_LAYOUT", "grid")

	executeCommand(t, newTestRoot(nil), f.args("--format=html", "--layout=list")...)
	assertContains(t, readTestFile(t, f.output), "<html>")

	os.Remove(f.output)
	_, err := executeCommandErr(t, newTestRoot(nil), f.args("--layout=list")...)
	if ExitCode(err) != ExitArgument {
		t.Fatalf("ExitCode = %d (%v), want %d", ExitCode(err), err, ExitArgument)
	}
	assertContains(t, err.Error(), "report.format")
	if _, statErr := os.Stat(f.output); !os.IsNotExist(statErr) {
		t.Fatalf("output should not be written, stat err = %v", statErr)
	}
}

func TestGenerateAcceptsMixedCaseFormat(t *testing.T) {
	f := newFixture(t, "A\n")
	t.Setenv("ASTROLOG_FORMAT", "Markdown")

	executeCommand(t, newTestRoot(nil), f.args()...)
	assertNotContains(t, readTestFile(t, f.output), "<div")
}
