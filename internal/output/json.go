/*
PURPOSE:
  Writes comparison rows to a JSON Lines file (NDJSON).
  Optimized for machine parsing (jq, dashboards).

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - JSON Lines lets several runs be concatenated and filtered by line.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: output.Row

ERROR HANDLING:
  - Returns error on file creation or write failure.

USAGE:
  w, err := output.NewJSONWriter("comparisons.jsonl")
  w.Write(row)
  w.Close()
*/

package output

import (
	"encoding/json"
	"os"
)

// JSONWriter handles writing rows to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single row as a JSON line.
func (jw *JSONWriter) Write(r Row) error {
	return jw.encoder.Encode(r)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
