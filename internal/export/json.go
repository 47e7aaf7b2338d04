package export

import (
	"encoding/json"
	"fmt"
)

// FormatJSON encodes the worksheet as indented JSON with a trailing newline.
func FormatJSON(worksheet *Worksheet) ([]byte, error) {
	data, err := json.MarshalIndent(worksheet, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding worksheet: %w", err)
	}
	return append(data, '\n'), nil
}
