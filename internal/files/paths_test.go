package files

import (
	"path/filepath"
	"testing"
)

func TestResolveHomeHonorsAstrologHome(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "custom-root")

	t.Setenv("ASTROLOG_HOME", custom)

	got, err := ResolveHome()
	if err != nil {
		t.Fatalf("ResolveHome() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolveHome() = %q, want %q", got, custom)
	}
}

func TestResolveHomeExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ASTROLOG_HOME", "~/astro-data")

	got, err := ResolveHome()
	if err != nil {
		t.Fatalf("ResolveHome() error = %v", err)
	}

	want := filepath.Join(home, "astro-data")
	if got != want {
		t.Fatalf("ResolveHome() = %q, want %q", got, want)
	}
}

func TestDefaultConfigPathUnderHomeDotAstrolog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ASTROLOG_HOME", "")

	got, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath() error = %v", err)
	}

	want := filepath.Join(home, DefaultDirName, ConfigFileName)
	if got != want {
		t.Fatalf("DefaultConfigPath() = %q, want %q", got, want)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/logs/observations.tsv", home + "/logs/observations.tsv"},
		{"~stargazer/log.tsv", "~stargazer/log.tsv"},
		{"relative/~/log.tsv", "relative/~/log.tsv"},
		{"/abs/log.tsv", "/abs/log.tsv"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.input)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
