// Package csvio handles the on-disk index formats: reading and writing CSV,
// matching header rows against the recognized schemas, and the stateless
// row-rewriting passes that move an index between schema versions.
package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Schema is one recognized index header layout.
type Schema struct {
	Name   string
	Header []string
}

var (
	// SchemaCurrent is the 8-column layout with a dedicated MD5 column.
	SchemaCurrent = Schema{
		Name:   "current",
		Header: []string{"Record", "Title", "File", "URL", "Date", "Part Number", "MD5 Checksum", "Options"},
	}
	// SchemaOld is the deprecated 7-column layout that kept checksums
	// inside the Options column.
	SchemaOld = Schema{
		Name:   "old",
		Header: []string{"Record", "Title", "File", "URL", "Date", "Part Number", "Options"},
	}
	// SchemaNoFile is the old layout without an explicit File column;
	// file names derive from the URL instead.
	SchemaNoFile = Schema{
		Name:   "nofile",
		Header: []string{"Record", "Title", "URL", "Date", "Part Number", "Options"},
	}
)

// RecognizedSchemas lists every header layout the aggregation core accepts.
var RecognizedSchemas = []Schema{SchemaCurrent, SchemaOld, SchemaNoFile}

// StructuralError marks malformed input that aborts the whole run: no
// partial catalogue is produced for it.
type StructuralError struct {
	Line   int
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("structural error on line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("structural error: %s", e.Reason)
}

// MatchSchema finds the schema whose header equals the given row exactly.
func MatchSchema(header []string) (Schema, error) {
	for _, schema := range RecognizedSchemas {
		if headerEqual(header, schema.Header) {
			return schema, nil
		}
	}
	return Schema{}, &StructuralError{Line: 1, Reason: fmt.Sprintf("unrecognized header %q", strings.Join(header, ","))}
}

func headerEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.TrimSpace(a[i]) != b[i] {
			return false
		}
	}
	return true
}

// Read loads all rows of a CSV file. Rows may have varying column counts;
// validation happens downstream where the schema is known.
func Read(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// Write stores rows as a CSV file, replacing any existing file.
func Write(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return file.Close()
}

// Blank reports whether every cell of the row is empty or whitespace.
func Blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// FileSource adapts a CSV file on disk to the pipeline's row source port.
type FileSource struct {
	Path string
}

// Rows reads the whole file; the first row is the header.
func (s FileSource) Rows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Read(s.Path)
}
