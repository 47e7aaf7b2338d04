// Package envfile applies ARRANGER_* settings from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Prefix restricts which keys an env file may set.
const Prefix = "ARRANGER_"

// Load reads an env file and sets every Prefix key not already present in
// the environment. It returns the number of variables set. A missing file is
// not an error.
func Load(path string) (int, error) {
	file, err := os.Open(path) //nolint:gosec // caller-chosen env file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	applied := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok || !strings.HasPrefix(key, Prefix) {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return applied, fmt.Errorf("setting %s: %w", key, err)
		}
		applied++
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return applied, nil
}

// LoadFirst loads each path in order. Earlier files win because later files
// never override a variable that is already set.
func LoadFirst(paths ...string) (int, error) {
	total := 0
	for _, path := range paths {
		if path == "" {
			continue
		}
		applied, err := Load(path)
		total += applied
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// parseLine extracts KEY=VALUE, skipping blanks and comments. An "export "
// prefix and matching quotes around the value are stripped.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
