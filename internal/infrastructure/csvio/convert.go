package csvio

import (
	"fmt"
	"log/slog"

	"ArchiveCatalog/internal/dates"
	"ArchiveCatalog/internal/infrastructure/parser"
)

// legacyColumns is the minimum width of a usable row in the raw export
// format: record type, title, link, date, page count.
const legacyColumns = 5

// Convert rewrites a legacy export CSV into the old 7-column index schema:
// textual dates become ISO, document file names are derived from the link,
// and the legacy source-page column and page count move into the Options
// column. Rows that are too short are dropped with a log line, matching the
// forgiving behaviour expected of a one-off conversion pass.
func Convert(inPath, outPath string, logger *slog.Logger) (int, error) {
	rows, err := Read(inPath)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, &StructuralError{Reason: "empty input file"}
	}

	out := [][]string{SchemaOld.Header}
	for i, row := range rows[1:] {
		if Blank(row) {
			continue
		}
		if len(row) < legacyColumns {
			if logger != nil {
				logger.Warn("dropping short legacy row", "line", i+2, "columns", len(row))
			}
			continue
		}

		recordType := row[0]
		title := row[1]
		link := row[2]
		date := dates.ToISO(row[3])
		pageCount := row[4]

		switch recordType {
		case "Section", "Subsection":
			out = append(out, []string{recordType, title, "", link, date, "", ""})
		default:
			// Anything else is a document; the record column held the
			// name of the page the link was found on.
			options := fmt.Sprintf("containing-page='%s' page-count='%s'", recordType, pageCount)
			out = append(out, []string{"Doc", title, parser.LastPathElement(link), link, date, "", options})
		}
	}

	if err := Write(outPath, out); err != nil {
		return 0, err
	}
	return len(out) - 1, nil
}
