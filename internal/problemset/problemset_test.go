package problemset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestRead_Text(t *testing.T) {
	input := "# warm-up\n32 + 698\n\n  3801 - 2  \n# done\n"

	set, err := Read(strings.NewReader(input), FormatText)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []string{"32 + 698", "3801 - 2"}
	if !slices.Equal(set.Problems, want) {
		t.Errorf("Problems = %q, want %q", set.Problems, want)
	}
	if set.ShowSolutions != nil {
		t.Errorf("ShowSolutions = %v, want nil", *set.ShowSolutions)
	}
}

func TestRead_YAML(t *testing.T) {
	input := `show_solutions: true
problems:
  - "32 + 698"
  - "3801 - 2"
`
	set, err := Read(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []string{"32 + 698", "3801 - 2"}
	if !slices.Equal(set.Problems, want) {
		t.Errorf("Problems = %q, want %q", set.Problems, want)
	}
	if set.ShowSolutions == nil || !*set.ShowSolutions {
		t.Error("ShowSolutions should be true")
	}
}

func TestRead_YAMLEmpty(t *testing.T) {
	set, err := Read(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(set.Problems) != 0 {
		t.Errorf("Problems = %q, want none", set.Problems)
	}
}

func TestRead_YAMLInvalid(t *testing.T) {
	_, err := Read(strings.NewReader("problems: [unterminated"), FormatYAML)
	if err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestRead_TOML(t *testing.T) {
	input := `show_solutions = false
problems = ["32 + 698", "3801 - 2"]
`
	set, err := Read(strings.NewReader(input), FormatTOML)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []string{"32 + 698", "3801 - 2"}
	if !slices.Equal(set.Problems, want) {
		t.Errorf("Problems = %q, want %q", set.Problems, want)
	}
	if set.ShowSolutions == nil || *set.ShowSolutions {
		t.Error("ShowSolutions should be set to false")
	}
}

func TestRead_TOMLInvalid(t *testing.T) {
	_, err := Read(strings.NewReader("problems = [\"1 + 2\""), FormatTOML)
	if err == nil {
		t.Fatal("expected error for invalid toml")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"set.yaml", FormatYAML},
		{"set.YML", FormatYAML},
		{"set.toml", FormatTOML},
		{"set.txt", FormatText},
		{"problems", FormatText},
	}

	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.yml")
	if err := os.WriteFile(path, []byte("problems:\n  - \"1 + 2\"\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !slices.Equal(set.Problems, []string{"1 + 2"}) {
		t.Errorf("Problems = %q", set.Problems)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap a not-exist error: %v", err)
	}
}
