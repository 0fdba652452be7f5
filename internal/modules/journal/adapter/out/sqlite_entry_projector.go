package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"studylog/internal/modules/journal/domain"
	journalout "studylog/internal/modules/journal/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteEntryProjector mirrors the log into a queryable index. The
// JSON state file stays the source of truth; this table can always be
// rebuilt with reindex.
type SQLiteEntryProjector struct {
	db *sql.DB
}

func NewSQLiteEntryProjector(dbPath string) (journalout.EntryIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteEntryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteEntryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS entries (
  id TEXT PRIMARY KEY,
  date TEXT NOT NULL,
  subtest TEXT NOT NULL,
  material_type TEXT NOT NULL,
  topic TEXT,
  duration_minutes INTEGER NOT NULL,
  score REAL,
  resource_url TEXT,
  notes TEXT,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("reset entries: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) UpsertEntry(ctx context.Context, entry domain.Entry) error {
	const stmt = `
INSERT INTO entries (id, date, subtest, material_type, topic, duration_minutes, score, resource_url, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  date=excluded.date,
  subtest=excluded.subtest,
  material_type=excluded.material_type,
  topic=excluded.topic,
  duration_minutes=excluded.duration_minutes,
  score=excluded.score,
  resource_url=excluded.resource_url,
  notes=excluded.notes,
  created_at=excluded.created_at,
  updated_at=excluded.updated_at;
`
	var score sql.NullFloat64
	if entry.Score != nil {
		score = sql.NullFloat64{Float64: *entry.Score, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.Date,
		entry.Subtest,
		entry.MaterialType,
		entry.Topic,
		entry.DurationMinutes,
		score,
		entry.ResourceURL,
		entry.Notes,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (s *SQLiteEntryProjector) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
SELECT id, date, subtest, material_type, topic, duration_minutes, score, resource_url, notes, created_at, updated_at
FROM entries
ORDER BY date DESC, updated_at DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var score sql.NullFloat64
		if err := rows.Scan(&e.ID, &e.Date, &e.Subtest, &e.MaterialType, &e.Topic, &e.DurationMinutes, &score, &e.ResourceURL, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if score.Valid {
			v := score.Float64
			e.Score = &v
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return out, nil
}
