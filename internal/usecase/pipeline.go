package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"ArchiveCatalog/internal/catalog"
	"ArchiveCatalog/internal/domain"
	"ArchiveCatalog/internal/infrastructure/csvio"
	"ArchiveCatalog/internal/infrastructure/parser"
	"ArchiveCatalog/internal/infrastructure/render"
	"ArchiveCatalog/internal/ports"
)

// BuildDeps wires the driven adapters into the catalogue pipeline.
type BuildDeps struct {
	Source  ports.RowSource
	Checker ports.FileChecker
	Store   ports.CatalogStore
	Logger  *slog.Logger
}

// Build is the core pipeline: classify rows, aggregate them into entries,
// render the HTML catalogue.
type Build struct {
	source  ports.RowSource
	checker ports.FileChecker
	store   ports.CatalogStore
	logger  *slog.Logger
}

// NewBuild constructs the orchestration component.
func NewBuild(deps BuildDeps) *Build {
	return &Build{
		source:  deps.Source,
		checker: deps.Checker,
		store:   deps.Store,
		logger:  deps.Logger,
	}
}

// Run aggregates the input and writes the HTML catalogue to out. The
// returned diagnostics are recovered warnings; a non-nil error means the
// input was structurally invalid and no catalogue was produced.
func (b *Build) Run(ctx context.Context, input, pageTitle string, out io.Writer) (*domain.Catalog, []domain.Diagnostic, error) {
	cat, diags, err := aggregate(ctx, b.source, b.checker, b.logger)
	if err != nil {
		return nil, nil, err
	}

	if err := render.WriteHTML(out, render.BuildPage(pageTitle, cat)); err != nil {
		return nil, nil, err
	}

	saveRun(ctx, b.store, b.logger, "build", input, cat, diags)
	return cat, diags, nil
}

// aggregate is the shared classify+merge pass behind build and export.
func aggregate(ctx context.Context, source ports.RowSource, checker ports.FileChecker, logger *slog.Logger) (*domain.Catalog, []domain.Diagnostic, error) {
	rows, err := source.Rows(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, &csvio.StructuralError{Reason: "empty input"}
	}
	if _, err := csvio.MatchSchema(rows[0]); err != nil {
		return nil, nil, err
	}

	var componentLogger *slog.Logger
	if logger != nil {
		componentLogger = logger.With("component", "classifier")
	}
	classifier := parser.NewClassifier(rows[0], componentLogger)
	builder := catalog.NewBuilder(logger)

	var diags []domain.Diagnostic
	for i, row := range rows[1:] {
		rec, rowDiags := classifier.Classify(row, i+2)
		diags = append(diags, rowDiags...)
		if rec == nil {
			continue
		}
		builder.Add(*rec)
	}

	cat, aggDiags := builder.Finalize(checker)
	return cat, append(diags, aggDiags...), nil
}

func saveRun(ctx context.Context, store ports.CatalogStore, logger *slog.Logger, command, input string, cat *domain.Catalog, diags []domain.Diagnostic) {
	if store == nil {
		return
	}

	documents := 0
	for _, entry := range cat.Entries() {
		if !entry.Kind.Heading() {
			documents++
		}
	}

	err := store.SaveRun(ctx, domain.RunSummary{
		Command:   command,
		Input:     input,
		Entries:   cat.Len(),
		Documents: documents,
		Warnings:  len(diags),
		StartedAt: time.Now(),
	})
	if err != nil && logger != nil {
		logger.Warn("run summary not persisted", "error", err)
	}
}
