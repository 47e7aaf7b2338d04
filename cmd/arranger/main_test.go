package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/config"
)

// isolateConfig points the config directory at an empty temp dir and clears
// environment overrides.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigHome, dir)
	t.Setenv(config.EnvShowSolutions, "")
	t.Setenv(config.EnvColor, "")
	return dir
}

// executeCmd runs the root command with args and returns stdout and stderr.
func executeCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	isolateConfig(t)
	oldVersion := version
	t.Cleanup(func() { version = oldVersion })
	version = "1.2.3"

	stdout, _, err := executeCmd(t, "", "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "arranger") {
		t.Errorf("--version output should contain 'arranger': %q", stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCmd(t, "", "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"arranger", "Usage:", "--json", "--color", "--verbose", "arrange", "serve"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("--help output should contain %q: %q", expected, stdout)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCmd(t, "", "--json")
	if err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", stdout)
	}
	if _, ok := result["code"]; !ok {
		t.Errorf("JSON output should contain 'code' field: %s", stdout)
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"json", "color", "verbose", "log-file"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
}

func TestRootCommand_Verbose_LogsToStderr(t *testing.T) {
	isolateConfig(t)

	stdout, stderr, err := executeCmd(t, "", "--verbose", "arrange", "1 + 2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "arranged problem set") {
		t.Errorf("stderr should carry the debug log: %q", stderr)
	}
	if strings.Contains(stdout, "arranged problem set") {
		t.Errorf("stdout should not carry logs: %q", stdout)
	}
}

func TestRootCommand_LogFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "arranger.log")

	_, stderr, err := executeCmd(t, "", "--log-file", path, "arrange", "1 + 2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr should stay quiet without --verbose: %q", stderr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"arranged problem set"`) {
		t.Errorf("log file should hold the debug entry: %s", data)
	}
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{name: "dev build", version: "dev", commit: "none", date: "unknown", want: "dev"},
		{
			name:    "release build",
			version: "1.0.0",
			commit:  "abcdef1234567",
			date:    "2026-01-15",
			want:    "1.0.0 (abcdef1, 2026-01-15)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := version, commit, date
			t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

			version, commit, date = tt.version, tt.commit, tt.date
			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
