// Package catalog folds a classified row stream into an ordered set of
// catalogue entries, merging the PDF and DOC variants of one work.
package catalog

import (
	"fmt"
	"log/slog"

	"ArchiveCatalog/internal/domain"
	"ArchiveCatalog/internal/ports"
)

// Builder is the single-owner accumulator for one aggregation run. It is
// not safe for concurrent use; the pipeline feeds it one row at a time and
// finalizes it exactly once.
type Builder struct {
	entries *domain.Catalog
	diags   []domain.Diagnostic
	logger  *slog.Logger
}

// NewBuilder starts an empty aggregation run.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{entries: domain.NewCatalog(), logger: logger}
}

// Add merges one classified record into the catalog. The first row for a
// composite key creates the entry; every row, first or not, overwrites the
// entry's date, page count and grouping key with its own values, blanks
// included. Existing catalogues depend on that overwrite, so it stays even
// though a later blank date erases an earlier one.
func (b *Builder) Add(rec domain.ClassifiedRecord) {
	key := rec.Key()
	entry, ok := b.entries.Lookup(key)
	if !ok {
		entry = &domain.CatalogEntry{Title: rec.Title, Kind: rec.Kind}
		b.entries.Insert(key, entry)
	}

	entry.Date = rec.Date
	entry.PageCount = rec.PageCount
	entry.GroupingKey = rec.GroupingKey

	if rec.Kind.Heading() {
		// Headings reuse the entry shape for rendering uniformity: both
		// url slots point at the heading's own target and no variant
		// inference happens.
		entry.PdfURL = rec.URL
		entry.DocURL = rec.URL
		return
	}

	switch rec.Variant {
	case domain.VariantPDF:
		entry.PdfFile = rec.FileName
		entry.PdfURL = rec.URL
	case domain.VariantDOC:
		entry.DocFile = rec.FileName
		entry.DocURL = rec.URL
	default:
		b.diags = append(b.diags, domain.Diagnostic{
			Kind:    domain.DiagCompleteness,
			Line:    rec.Line,
			Message: fmt.Sprintf("unknown file type in %q", rec.URL),
		})
	}
}

// Finalize runs the completeness pass and resolves variant availability
// against the local archive. The returned diagnostics never abort the run;
// flagged entries are retained as-is.
func (b *Builder) Finalize(checker ports.FileChecker) (*domain.Catalog, []domain.Diagnostic) {
	for _, entry := range b.entries.Entries() {
		if entry.Kind.Heading() {
			continue
		}

		entry.PdfAvailability = availability(entry.PdfFile, entry.PdfURL, checker)
		entry.DocAvailability = availability(entry.DocFile, entry.DocURL, checker)

		if entry.PdfFile == "" && entry.DocFile == "" {
			b.diags = append(b.diags, domain.Diagnostic{
				Kind:    domain.DiagCompleteness,
				Message: fmt.Sprintf("missing files for %s (%s)", entry.Title, entry.GroupingKey),
			})
		}
		if entry.PdfURL == "" && entry.DocURL == "" {
			b.diags = append(b.diags, domain.Diagnostic{
				Kind:    domain.DiagCompleteness,
				Message: fmt.Sprintf("missing urls for %s", entry.Title),
			})
		}
	}

	if b.logger != nil {
		b.logger.Info("aggregation finished", "entries", b.entries.Len(), "warnings", len(b.diags))
	}
	return b.entries, b.diags
}

func availability(file, url string, checker ports.FileChecker) domain.Availability {
	if file == "" && url == "" {
		return domain.Missing
	}
	if file != "" && checker != nil && checker.Exists(file) {
		return domain.LocalFile
	}
	return domain.RemoteOnly
}
