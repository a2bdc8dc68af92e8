package ports

import (
	"context"

	"ArchiveCatalog/internal/domain"
)

// RowSource supplies the ordered raw rows of one index, header first.
type RowSource interface {
	Rows(ctx context.Context) ([][]string, error)
}

// FileChecker answers whether a derived artifact name resolves to a local
// file. Probe failures count as absent.
type FileChecker interface {
	Exists(name string) bool
}

// Checksummer computes the MD5 checksum of a local file.
type Checksummer interface {
	Sum(path string) (string, error)
}

// IndexScanner scrapes a remote archive index page into legacy-schema rows.
type IndexScanner interface {
	Fetch(ctx context.Context, pageURL, source string) ([][]string, error)
}

// CatalogStore persists run summaries and per-document checksums for
// deduplication across invocations.
type CatalogStore interface {
	KnownChecksums(ctx context.Context, files []string) (map[string]string, error)
	SaveDocuments(ctx context.Context, docs []domain.StoredDocument) error
	SaveRun(ctx context.Context, run domain.RunSummary) error
}
