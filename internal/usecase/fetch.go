package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ArchiveCatalog/internal/infrastructure/csvio"
	"ArchiveCatalog/internal/ports"
)

// Fetch scrapes a remote archive index page into a legacy-schema CSV that
// the convert pass can pick up.
type Fetch struct {
	Scanner ports.IndexScanner
	Logger  *slog.Logger
}

// Run writes the scraped rows to outPath and returns the document count.
func (f Fetch) Run(ctx context.Context, pageURL, source, outPath string) (int, error) {
	if f.Scanner == nil {
		return 0, fmt.Errorf("no index scanner configured")
	}

	rows, err := f.Scanner.Fetch(ctx, pageURL, source)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	if err := csvio.Write(outPath, rows); err != nil {
		return 0, err
	}
	if f.Logger != nil {
		f.Logger.Info("index page saved", "url", pageURL, "rows", len(rows)-1, "output", outPath)
	}
	return len(rows) - 1, nil
}
