package usecase

import (
	"context"
	"log/slog"

	"ArchiveCatalog/internal/infrastructure/csvio"
	"ArchiveCatalog/internal/infrastructure/parser"
	"ArchiveCatalog/internal/ports"
)

// Check copies an index CSV, dropping document rows whose derived local
// file is absent from the archive directory. Heading rows pass through
// untouched.
type Check struct {
	Checker ports.FileChecker
	Logger  *slog.Logger
}

// CheckResult reports how many document rows survived the presence check.
type CheckResult struct {
	Present int
	Missing int
	// MissingURLs lists the remote copies of dropped rows, for manual
	// follow-up against the hosting archive.
	MissingURLs []string
}

// Run filters inPath into outPath.
func (c Check) Run(ctx context.Context, inPath, outPath string) (CheckResult, error) {
	var result CheckResult

	rows, err := csvio.Read(inPath)
	if err != nil {
		return result, err
	}
	if len(rows) == 0 {
		return result, &csvio.StructuralError{Reason: "empty input"}
	}
	if _, err := csvio.MatchSchema(rows[0]); err != nil {
		return result, err
	}

	header := rows[0]
	columns := map[string]int{}
	for i, name := range header {
		columns[name] = i
	}
	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	out := [][]string{header}
	for i, row := range rows[1:] {
		if csvio.Blank(row) {
			continue
		}
		if cell(row, "Record") != "Doc" {
			out = append(out, row)
			continue
		}

		fileName := cell(row, "File")
		if fileName == "" {
			fileName = parser.LastPathElement(cell(row, "URL"))
		}

		if c.Checker != nil && c.Checker.Exists(fileName) {
			out = append(out, row)
			result.Present++
			continue
		}

		result.Missing++
		result.MissingURLs = append(result.MissingURLs, cell(row, "URL"))
		if c.Logger != nil {
			c.Logger.Warn("document file not found locally",
				"line", i+2, "file", fileName, "url", cell(row, "URL"))
		}
	}

	if err := csvio.Write(outPath, out); err != nil {
		return result, err
	}
	return result, nil
}
