// Package notes stores sticky notes, either on the remote notes service
// or in a local SQLite database.
package notes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Default position and text for a freshly created note.
const (
	DefaultContent = "new sticky"
	DefaultX       = 50
	DefaultY       = 50
)

// ErrNotFound is returned when a note id does not exist.
var ErrNotFound = errors.New("note not found")

// Note is a persisted sticky note. X and Y are its top-left offset on the
// desktop. CreatedAt is in Unix seconds.
type Note struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// Created returns CreatedAt as a time.
func (n Note) Created() time.Time {
	return time.Unix(n.CreatedAt, 0)
}

// Store is the persistence collaborator for sticky notes.
type Store interface {
	List(ctx context.Context) ([]Note, error)
	Create(ctx context.Context, content string, x, y int) (Note, error)
	Update(ctx context.Context, note Note) error
	Delete(ctx context.Context, id int) error
}

// StatusError reports a non-2xx response from the notes service.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return fmt.Sprintf("notes: http %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("notes: http %d", e.StatusCode)
}

// Is lets errors.Is match a 404 against ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
