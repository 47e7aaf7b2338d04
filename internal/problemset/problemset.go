// Package problemset reads problem sets from files.
//
// Three formats are supported. Plain text holds one problem per line; blank
// lines and lines starting with '#' are skipped:
//
//	# warm-up
//	32 + 698
//	3801 - 2
//
// YAML files carry the problems and an optional solutions switch:
//
//	show_solutions: true
//	problems:
//	  - "32 + 698"
//	  - "3801 - 2"
//
// TOML files use the same keys:
//
//	show_solutions = true
//	problems = ["32 + 698", "3801 - 2"]
package problemset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a problem set file.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Set is a problem set read from a file.
type Set struct {
	Problems []string `toml:"problems" yaml:"problems"`
	// ShowSolutions is nil when the file does not say.
	ShowSolutions *bool `toml:"show_solutions" yaml:"show_solutions,omitempty"`
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Load reads a problem set from path.
func Load(path string) (*Set, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("opening problem set %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	set, err := Read(file, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("reading problem set %s: %w", path, err)
	}
	return set, nil
}

// Read decodes a problem set in the given format.
func Read(r io.Reader, format Format) (*Set, error) {
	switch format {
	case FormatYAML:
		return readYAML(r)
	case FormatTOML:
		return readTOML(r)
	default:
		return readText(r)
	}
}

func readYAML(r io.Reader) (*Set, error) {
	var set Set
	if err := yaml.NewDecoder(r).Decode(&set); err != nil {
		if errors.Is(err, io.EOF) {
			return &Set{}, nil
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return &set, nil
}

func readTOML(r io.Reader) (*Set, error) {
	var set Set
	if _, err := toml.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}
	return &set, nil
}

func readText(r io.Reader) (*Set, error) {
	set := &Set{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Problems = append(set.Problems, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return set, nil
}
