/*
PURPOSE:
  Writes a per-run summary of results to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Optional summary of every processed input.

  Implementation-discovered:
  - Workers write concurrently; rows are serialized with a mutex.
  - The file is truncated at the start of each run.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).

USAGE:
  w, err := output.NewCSVWriter("summary.csv")
  w.Write("r1", result, nil)
  w.Close()

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when Result struct changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"sync"

	"github.com/daryltucker/rectcalc/internal/model"
)

// CSVHeader is the first row of every summary file.
var CSVHeader = []string{"source", "length", "width", "perimeter", "area", "error"}

// CSVWriter handles writing results to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single result row. A non-nil cause is recorded in the
// error column. It is thread-safe.
func (cw *CSVWriter) Write(source string, r model.Result, cause error) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	errStr := ""
	if cause != nil {
		errStr = cause.Error()
	}
	record := []string{
		source,
		r.Length.String(),
		r.Width.String(),
		r.Perimeter.String(),
		r.Area.String(),
		errStr,
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.writer.Flush()
	return cw.file.Close()
}
