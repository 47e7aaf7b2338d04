package main

import (
	"encoding/json"
	"testing"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/output"
)

func TestCheckCommand_Valid(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := executeCmd(t, "", "check", "32 + 698", "3801 - 2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "#  Problem   Width  Solution\n" +
		"1  32 + 698  5      730\n" +
		"2  3801 - 2  6      3799\n" +
		"\n" +
		"OK: 2 problem(s) valid\n"
	if stdout != want {
		t.Errorf("stdout =\n%q\nwant\n%q", stdout, want)
	}
}

func TestCheckCommand_Invalid(t *testing.T) {
	isolateConfig(t)

	stdout, stderr, err := executeCmd(t, "", "check", "3 + 855", "3 * 6")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty, got %q", stdout)
	}
	if stderr != "Error: Operator must be '+' or '-'.\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestCheckCommand_JSON(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantValid bool
		wantKind  string
		wantIndex any
		wantCode  int
	}{
		{
			name:      "valid",
			args:      []string{"check", "--json", "1 + 2"},
			wantValid: true,
		},
		{
			name:      "operand too long",
			args:      []string{"check", "--json", "1 + 2", "12345 + 1"},
			wantKind:  "operand_too_long",
			wantIndex: float64(1),
			wantCode:  output.ExitUserError,
		},
		{
			name:     "too many problems has no index",
			args:     []string{"check", "--json", "1 + 2", "1 + 2", "1 + 2", "1 + 2", "1 + 2", "1 + 2"},
			wantKind: "too_many_problems",
			wantCode: output.ExitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)

			stdout, _, err := executeCmd(t, "", tt.args...)
			if code := output.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}

			var result map[string]any
			if err := json.Unmarshal([]byte(stdout), &result); err != nil {
				t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
			}
			if result["valid"] != tt.wantValid {
				t.Errorf("valid = %v, want %v", result["valid"], tt.wantValid)
			}
			if tt.wantKind != "" && result["kind"] != tt.wantKind {
				t.Errorf("kind = %v, want %v", result["kind"], tt.wantKind)
			}
			if result["index"] != tt.wantIndex {
				t.Errorf("index = %v, want %v", result["index"], tt.wantIndex)
			}
		})
	}
}
