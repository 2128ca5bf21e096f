/*
PURPOSE:
  Writes comparison rows to a CSV file for spreadsheets and plotting tools.

REQUIREMENTS:
  User-specified:
  - Export the derived metrics alongside the text report.

  Implementation-discovered:
  - A fixed column order keeps exports from different runs diffable.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: output.Row

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write so a failed run leaves the rows written so far.

USAGE:
  w, err := output.NewCSVWriter("comparisons.csv")
  w.Write(row)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If Row changes, update csvHeader and the record conversion.

RELATED FILES:
  - internal/output/rows.go

MAINTENANCE:
  - Update Write() mapping when Row changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
)

var csvHeader = []string{
	"kind", "test", "unit", "baseline", "vpn",
	"delta", "percent", "ratio", "direction", "rating",
}

// CSVWriter handles writing rows to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Write writes a single row to the CSV file.
func (cw *CSVWriter) Write(r Row) error {
	record := []string{
		string(r.Kind),
		r.Test,
		r.Unit,
		formatFloat(r.Baseline),
		formatFloat(r.VPN),
		formatFloat(r.Delta),
		formatFloat(r.Percent),
		strconv.FormatFloat(r.Ratio, 'f', 4, 64),
		r.Direction,
		string(r.Rating),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	if err := cw.writer.Error(); err != nil {
		cw.file.Close()
		return err
	}
	return cw.file.Close()
}
