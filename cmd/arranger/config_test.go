package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/config"
)

func TestConfigCommand(t *testing.T) {
	configDir := isolateConfig(t)
	writeTestFile(t, filepath.Join(configDir, config.FileName), "show_solutions: true\ncolor: never\n")

	stdout, _, err := executeCmd(t, "", "config")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"dir: " + configDir,
		"path: " + filepath.Join(configDir, config.FileName),
		"show_solutions: true",
		"color: never",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output should contain %q:\n%s", want, stdout)
		}
	}
}

func TestConfigCommand_JSON_EnvOverride(t *testing.T) {
	configDir := isolateConfig(t)
	t.Setenv(config.EnvColor, "ALWAYS")

	stdout, _, err := executeCmd(t, "", "config", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result configResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if result.Dir != configDir {
		t.Errorf("dir = %q, want %q", result.Dir, configDir)
	}
	if result.Color != "always" {
		t.Errorf("color = %q, want always", result.Color)
	}
	if result.ShowSolutions {
		t.Error("show_solutions should default to false")
	}
}
