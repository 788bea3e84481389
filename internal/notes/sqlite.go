package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	x INTEGER NOT NULL,
	y INTEGER NOT NULL
)`,
}

// SQLiteStore keeps notes in a local database file.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates the database at path and applies migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply migration %d: %w", i, err)
		}
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) List(ctx context.Context) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, content, created_at, x, y FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Content, &n.CreatedAt, &n.X, &n.Y); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Create(ctx context.Context, content string, x, y int) (Note, error) {
	n := Note{
		Content:   content,
		CreatedAt: s.now().Unix(),
		X:         x,
		Y:         y,
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notes(content, created_at, x, y) VALUES (?, ?, ?, ?)`,
		n.Content, n.CreatedAt, n.X, n.Y)
	if err != nil {
		return Note{}, fmt.Errorf("insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("insert note id: %w", err)
	}
	n.ID = int(id)
	return n, nil
}

func (s *SQLiteStore) Update(ctx context.Context, n Note) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET content = ?, x = ?, y = ? WHERE id = ?`,
		n.Content, n.X, n.Y, n.ID)
	if err != nil {
		return fmt.Errorf("update note %d: %w", n.ID, err)
	}
	return requireRow(res, n.ID)
}

func (s *SQLiteStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}

// IsNotFound reports whether err means the note is gone.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
