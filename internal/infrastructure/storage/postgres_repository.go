package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"ArchiveCatalog/internal/domain"
	"ArchiveCatalog/internal/ports"
)

// PostgresStore persists run summaries and per-document checksums.
type PostgresStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.CatalogStore = (*PostgresStore)(nil)

// NewPostgresStore wires a sql.DB implementation.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// KnownChecksums returns the stored checksum for every listed file path
// that has one.
func (s *PostgresStore) KnownChecksums(ctx context.Context, files []string) (map[string]string, error) {
	if s.db == nil || len(files) == 0 {
		return map[string]string{}, nil
	}

	query, args, err := s.builder.
		Select("file_path", "md5").
		From("document_checksums").
		Where(sq.Expr("file_path = ANY(?)", pq.StringArray(files))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build checksum query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query checksums: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var filePath, md5 string
		if err := rows.Scan(&filePath, &md5); err != nil {
			return nil, fmt.Errorf("scan checksum: %w", err)
		}
		result[filePath] = md5
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return result, nil
}

// SaveDocuments upserts per-document records keyed by file path.
func (s *PostgresStore) SaveDocuments(ctx context.Context, docs []domain.StoredDocument) error {
	if s.db == nil || len(docs) == 0 {
		return nil
	}

	insert := s.builder.
		Insert("document_checksums").
		Columns("file_path", "md5", "title", "url", "pub_date").
		Suffix(`ON CONFLICT (file_path) DO UPDATE
                SET md5 = EXCLUDED.md5,
                    title = EXCLUDED.title,
                    url = EXCLUDED.url,
                    pub_date = EXCLUDED.pub_date,
                    updated_at = NOW()`)
	for _, doc := range docs {
		insert = insert.Values(doc.FilePath, doc.MD5, doc.Title, doc.URL, doc.Date)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build document upsert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert documents: %w", err)
	}
	return nil
}

// SaveRun appends one run summary.
func (s *PostgresStore) SaveRun(ctx context.Context, run domain.RunSummary) error {
	if s.db == nil {
		return nil
	}

	started := run.StartedAt
	if started.IsZero() {
		started = time.Now()
	}

	query, args, err := s.builder.
		Insert("catalog_runs").
		Columns("command", "input", "entries", "documents", "warnings", "started_at").
		Values(run.Command, run.Input, run.Entries, run.Documents, run.Warnings, started).
		ToSql()
	if err != nil {
		return fmt.Errorf("build run insert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}
