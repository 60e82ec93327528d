package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/faizmokh/astrolog/internal/config"
)

const fixtureLog = "# id\tdate\tlocation\tscope\tseeing\ttransparency\tobjects\ttime\teyepiece\tmagnification\tnotes\tsketch\n" +
	"A\t2024-01-12\tCherry Springs\t12in Dob\t4/5\t5/5\tM42\t23:10\t13mm\t117x\tTrapezium <E> & \"F\"\tm42\n" +
	"B\t2024-01-13\t\t\t\t\tM1\t\t\t\t\tm1\n"

const fixtureTemplate = "<html>%OBSERVATIONS%</html> %NAME%"

type fixture struct {
	dir      string
	log      string
	ids      string
	template string
	output   string
}

// newFixture writes a log, a log ids file and a template into a temp dir and
// isolates the test from the user's config and environment.
func newFixture(t *testing.T, ids string) fixture {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ASTROLOG_HOME", filepath.Join(home, ".astrolog"))
	for _, key := range []string{config.EnvName, config.EnvImageDir, config.EnvImageExtension,
		config.EnvLayout, config.EnvFormat, config.EnvLogLevel} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	chdir(t, dir)

	f := fixture{
		dir:      dir,
		log:      filepath.Join(dir, "log.tsv"),
		ids:      filepath.Join(dir, "ids.txt"),
		template: filepath.Join(dir, "template.html"),
		output:   filepath.Join(dir, "out.html"),
	}
	writeTestFile(t, f.log, fixtureLog)
	writeTestFile(t, f.ids, ids)
	writeTestFile(t, f.template, fixtureTemplate)
	return f
}

func (f fixture) args(extra ...string) []string {
	return append([]string{
		"--log=" + f.log,
		"--logIds=" + f.ids,
		"--template=" + f.template,
		"--output=" + f.output,
	}, extra...)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func newTestRoot(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	return NewRootCommand(context.Background(), logger)
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func executeCommandErr(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		t.Fatalf("cmd.Execute(%q) expected error\n%s", args, buf.String())
	}
	return buf.String(), err
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Chdir: %v", err)
		}
	})
}
