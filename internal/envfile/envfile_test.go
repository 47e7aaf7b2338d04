package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

// unset clears a variable for the duration of the test.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key) //nolint:errcheck
}

func writeEnv(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_NonexistentFile(t *testing.T) {
	applied, err := Load("/nonexistent/.env")
	if err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
	if applied != 0 {
		t.Errorf("applied = %d, want 0", applied)
	}
}

func TestLoad_OnlyPrefixedKeys(t *testing.T) {
	path := writeEnv(t, ".env.local", "ARRANGER_COLOR=never\nOTHER_ENVFILE_KEY=x\n")
	unset(t, "ARRANGER_COLOR")
	unset(t, "OTHER_ENVFILE_KEY")

	applied, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	if got := os.Getenv("ARRANGER_COLOR"); got != "never" {
		t.Errorf("ARRANGER_COLOR = %q, want %q", got, "never")
	}
	if _, set := os.LookupEnv("OTHER_ENVFILE_KEY"); set {
		t.Error("OTHER_ENVFILE_KEY should not be set")
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	path := writeEnv(t, ".env", "ARRANGER_SHOW_SOLUTIONS=false\n")
	t.Setenv("ARRANGER_SHOW_SOLUTIONS", "true")

	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("ARRANGER_SHOW_SOLUTIONS"); got != "true" {
		t.Errorf("ARRANGER_SHOW_SOLUTIONS = %q, want %q (env should take precedence)", got, "true")
	}
}

func TestLoadFirst_EarlierFileWins(t *testing.T) {
	local := writeEnv(t, ".env.local", "# local\nARRANGER_COLOR=always\n")
	shared := writeEnv(t, ".env", "ARRANGER_COLOR=never\nARRANGER_SHOW_SOLUTIONS=1\n")
	unset(t, "ARRANGER_COLOR")
	unset(t, "ARRANGER_SHOW_SOLUTIONS")

	applied, err := LoadFirst(local, "", shared)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if got := os.Getenv("ARRANGER_COLOR"); got != "always" {
		t.Errorf("ARRANGER_COLOR = %q, want %q", got, "always")
	}
	if got := os.Getenv("ARRANGER_SHOW_SOLUTIONS"); got != "1" {
		t.Errorf("ARRANGER_SHOW_SOLUTIONS = %q, want %q", got, "1")
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		wantKey string
		wantVal string
		wantOK  bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"KEY=\"quoted value\"", "KEY", "quoted value", true},
		{"KEY='single quoted'", "KEY", "single quoted", true},
		{"KEY=\"mismatched'", "KEY", "\"mismatched'", true},
		{"export KEY=value", "KEY", "value", true},
		{"  KEY = value  ", "KEY", "value", true},
		{"KEY=a=b", "KEY", "a=b", true},
		{"# comment=1", "", "", false},
		{"no-equals-sign", "", "", false},
		{"=no-key", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		key, val, ok := parseLine(tt.line)
		if ok != tt.wantOK || key != tt.wantKey || val != tt.wantVal {
			t.Errorf("parseLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, val, ok, tt.wantKey, tt.wantVal, tt.wantOK)
		}
	}
}
