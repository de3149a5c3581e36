// Package output serializes converted timetables.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
)

// Indent is the indentation used for pretty-printed output.
const Indent = "  "

// ToJSON serializes data. HTML characters are written as-is and the result
// has no trailing newline.
func ToJSON(data *models.ProcessedData, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", Indent)
	}
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile serializes data to dir/name, creating dir if needed.
// It returns the path written.
func WriteFile(dir, name string, data *models.ProcessedData, pretty bool) (string, error) {
	jsonData, err := ToJSON(data, pretty)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", err
	}
	return path, nil
}
