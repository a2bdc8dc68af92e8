package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"ArchiveCatalog/internal/domain"
	"ArchiveCatalog/internal/ports"
)

// Export aggregates like Build but emits the catalogue as YAML, one
// document per composite key, in insertion order.
type Export struct {
	source  ports.RowSource
	checker ports.FileChecker
	store   ports.CatalogStore
	logger  *slog.Logger
}

// NewExport constructs the export pipeline.
func NewExport(deps BuildDeps) *Export {
	return &Export{
		source:  deps.Source,
		checker: deps.Checker,
		store:   deps.Store,
		logger:  deps.Logger,
	}
}

type yamlEntry struct {
	Title     string `yaml:"title"`
	Kind      string `yaml:"kind"`
	PdfFile   string `yaml:"pdfFile,omitempty"`
	DocFile   string `yaml:"docFile,omitempty"`
	PdfURL    string `yaml:"pdfUrl,omitempty"`
	DocURL    string `yaml:"docUrl,omitempty"`
	Date      string `yaml:"date,omitempty"`
	PageCount string `yaml:"pageCount,omitempty"`
	Source    string `yaml:"source,omitempty"`
}

// Run writes the aggregated catalogue as YAML. Entries marshal one at a
// time, each as a single-key map, so the output order stays the catalogue
// order rather than the marshaller's.
func (e *Export) Run(ctx context.Context, input string, out io.Writer) (*domain.Catalog, []domain.Diagnostic, error) {
	cat, diags, err := aggregate(ctx, e.source, e.checker, e.logger)
	if err != nil {
		return nil, nil, err
	}

	entries := cat.Entries()
	for i, key := range cat.Keys() {
		entry := entries[i]
		one := map[string]yamlEntry{key: {
			Title:     entry.Title,
			Kind:      string(entry.Kind),
			PdfFile:   entry.PdfFile,
			DocFile:   entry.DocFile,
			PdfURL:    entry.PdfURL,
			DocURL:    entry.DocURL,
			Date:      entry.Date,
			PageCount: entry.PageCount,
			Source:    entry.GroupingKey,
		}}
		chunk, err := yaml.Marshal(one)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal entry %q: %w", key, err)
		}
		if _, err := out.Write(chunk); err != nil {
			return nil, nil, fmt.Errorf("write yaml: %w", err)
		}
	}

	saveRun(ctx, e.store, e.logger, "export", input, cat, diags)
	return cat, diags, nil
}
