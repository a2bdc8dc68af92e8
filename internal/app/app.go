package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"ArchiveCatalog/internal/config"
	"ArchiveCatalog/internal/domain"
	"ArchiveCatalog/internal/infrastructure/checksum"
	"ArchiveCatalog/internal/infrastructure/csvio"
	"ArchiveCatalog/internal/infrastructure/localfs"
	"ArchiveCatalog/internal/infrastructure/storage"
	"ArchiveCatalog/internal/infrastructure/webindex"
	"ArchiveCatalog/internal/logging"
	"ArchiveCatalog/internal/ports"
	"ArchiveCatalog/internal/usecase"
)

// Application wires config to adapters and use cases.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *sql.DB
	store   ports.CatalogStore
	checker ports.FileChecker
}

// New builds a runnable application instance. The run store is optional:
// without a DSN the pipelines simply skip persistence.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	a := &Application{
		cfg:     cfg,
		logger:  baseLogger,
		checker: localfs.New(cfg.BaseDir, baseLogger.With("component", "localfs")),
	}

	if cfg.Database.DSN != "" {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			baseLogger.Warn("run store disabled", "error", err)
		} else {
			a.db = db
			a.store = storage.NewPostgresStore(db)
		}
	}
	return a
}

// Close releases the run-store connection, if any.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Build aggregates csvPath and writes the HTML catalogue to outPath, or to
// stdout when outPath is empty.
func (a *Application) Build(ctx context.Context, csvPath, outPath string) ([]domain.Diagnostic, error) {
	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return nil, err
	}
	defer closeOut()

	build := usecase.NewBuild(usecase.BuildDeps{
		Source:  csvio.FileSource{Path: csvPath},
		Checker: a.checker,
		Store:   a.store,
		Logger:  a.logger.With("component", "pipeline"),
	})
	_, diags, err := build.Run(ctx, csvPath, a.cfg.Page.Title, out)
	return diags, err
}

// Export aggregates csvPath and writes the catalogue as YAML.
func (a *Application) Export(ctx context.Context, csvPath, outPath string) ([]domain.Diagnostic, error) {
	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return nil, err
	}
	defer closeOut()

	export := usecase.NewExport(usecase.BuildDeps{
		Source:  csvio.FileSource{Path: csvPath},
		Checker: a.checker,
		Store:   a.store,
		Logger:  a.logger.With("component", "export"),
	})
	_, diags, err := export.Run(ctx, csvPath, out)
	return diags, err
}

// Check filters inPath into outPath, dropping document rows without a
// local file.
func (a *Application) Check(ctx context.Context, inPath, outPath string) (usecase.CheckResult, error) {
	check := usecase.Check{
		Checker: a.checker,
		Logger:  a.logger.With("component", "check"),
	}
	return check.Run(ctx, inPath, outPath)
}

// Convert rewrites a legacy export CSV into the old index schema and
// returns the number of rows written.
func (a *Application) Convert(_ context.Context, inPath, outPath string) (int, error) {
	return csvio.Convert(inPath, outPath, a.logger.With("component", "convert"))
}

// Upgrade rewrites an old index CSV into the current schema, backfilling
// MD5 checksums. Returns the number of checksums computed.
func (a *Application) Upgrade(ctx context.Context, inPath, outPath string) (int, error) {
	upgrade := csvio.Upgrade{
		Summer: checksum.Summer{},
		Store:  a.store,
		Logger: a.logger.With("component", "upgrade"),
	}
	return upgrade.Run(ctx, inPath, outPath)
}

// Fetch scrapes a remote index page into a legacy-schema CSV.
func (a *Application) Fetch(ctx context.Context, pageURL, source, outPath string) (int, error) {
	if source == "" {
		source = a.cfg.Fetch.Source
	}
	fetch := usecase.Fetch{
		Scanner: webindex.NewScanner(nil, a.logger.With("component", "webindex")),
		Logger:  a.logger.With("component", "fetch"),
	}
	return fetch.Run(ctx, pageURL, source, outPath)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return file, func() { file.Close() }, nil
}
