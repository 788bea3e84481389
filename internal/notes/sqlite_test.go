package notes

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	a, err := s.Create(ctx, DefaultContent, DefaultX, DefaultY)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := s.Create(ctx, "second", 1, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids should differ, both %d", a.ID)
	}
	if a.CreatedAt != 1714564800 {
		t.Errorf("CreatedAt = %d", a.CreatedAt)
	}

	a.Content = "edited"
	a.X, a.Y = 70, 80
	if err := s.Update(ctx, a); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d notes, want 1", len(got))
	}
	if got[0] != a {
		t.Errorf("got %+v, want %+v", got[0], a)
	}
}

func TestSQLiteStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.Update(ctx, Note{ID: 42}); !IsNotFound(err) {
		t.Errorf("Update missing: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, 42); !IsNotFound(err) {
		t.Errorf("Delete missing: got %v, want ErrNotFound", err)
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "notes.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if _, err := s.Create(ctx, "kept", 5, 5); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close() //nolint:errcheck
	got, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Content != "kept" {
		t.Errorf("got %+v after reopen", got)
	}
}
