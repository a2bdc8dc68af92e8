package csvio

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"

	"ArchiveCatalog/internal/domain"
	"ArchiveCatalog/internal/ports"
)

var md5OptionExpr = regexp.MustCompile(`\s*md5='([^']*)'`)

// Upgrade rewrites an old 7-column index into the current 8-column schema.
// Document rows get their checksum moved out of the Options column into the
// dedicated MD5 column; rows without one have it computed from the local
// file next to the input CSV. The old format is validated strictly: a bad
// header or a non-blank row with the wrong column count aborts the run.
type Upgrade struct {
	Summer ports.Checksummer
	Store  ports.CatalogStore
	Logger *slog.Logger
}

// Run converts inPath to outPath and returns the number of document rows
// whose checksum had to be computed.
func (u Upgrade) Run(ctx context.Context, inPath, outPath string) (int, error) {
	rows, err := Read(inPath)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, &StructuralError{Reason: "empty input file"}
	}
	if !headerEqual(rows[0], SchemaOld.Header) {
		return 0, &StructuralError{Line: 1, Reason: fmt.Sprintf("header does not match the %s schema", SchemaOld.Name)}
	}

	baseDir := filepath.Dir(inPath)
	known := u.knownChecksums(ctx, rows[1:])

	computed := 0
	out := [][]string{SchemaCurrent.Header}
	for i, row := range rows[1:] {
		line := i + 2
		if Blank(row) {
			u.debug("ignoring empty row", "line", line)
			continue
		}
		if len(row) != len(SchemaOld.Header) {
			return 0, &StructuralError{
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns but found %d", len(SchemaOld.Header), len(row)),
			}
		}

		md5 := ""
		options := row[6]
		if row[0] == "Doc" {
			if match := md5OptionExpr.FindStringSubmatch(options); match != nil {
				md5 = match[1]
				options = md5OptionExpr.ReplaceAllString(options, "")
			}
			if md5 == "" {
				if cached, ok := known[row[2]]; ok {
					md5 = cached
				} else if u.Summer != nil {
					md5, err = u.Summer.Sum(filepath.Join(baseDir, row[2]))
					if err != nil {
						return 0, fmt.Errorf("checksum %s: %w", row[2], err)
					}
					computed++
				}
			}
		}

		out = append(out, []string{row[0], row[1], row[2], row[3], row[4], row[5], md5, options})
	}

	if err := Write(outPath, out); err != nil {
		return 0, err
	}
	u.saveChecksums(ctx, out[1:])
	return computed, nil
}

// knownChecksums asks the store for checksums of every document file named
// in the input, so unchanged archives do not get re-read on every upgrade.
func (u Upgrade) knownChecksums(ctx context.Context, rows [][]string) map[string]string {
	if u.Store == nil {
		return nil
	}

	var files []string
	for _, row := range rows {
		if len(row) == len(SchemaOld.Header) && row[0] == "Doc" && row[2] != "" {
			files = append(files, row[2])
		}
	}
	if len(files) == 0 {
		return nil
	}

	known, err := u.Store.KnownChecksums(ctx, files)
	if err != nil {
		u.warn("checksum lookup failed", "error", err)
		return nil
	}
	return known
}

func (u Upgrade) saveChecksums(ctx context.Context, rows [][]string) {
	if u.Store == nil {
		return
	}

	docs := storedDocuments(rows)
	if len(docs) == 0 {
		return
	}
	if err := u.Store.SaveDocuments(ctx, docs); err != nil {
		u.warn("checksum save failed", "error", err)
	}
}

func storedDocuments(rows [][]string) []domain.StoredDocument {
	var docs []domain.StoredDocument
	for _, row := range rows {
		if len(row) != len(SchemaCurrent.Header) || row[0] != "Doc" || row[6] == "" {
			continue
		}
		docs = append(docs, domain.StoredDocument{
			FilePath: row[2],
			MD5:      row[6],
			Title:    row[1],
			URL:      row[3],
			Date:     row[4],
		})
	}
	return docs
}

func (u Upgrade) debug(msg string, args ...any) {
	if u.Logger != nil {
		u.Logger.Debug(msg, args...)
	}
}

func (u Upgrade) warn(msg string, args ...any) {
	if u.Logger != nil {
		u.Logger.Warn(msg, args...)
	}
}
