package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// MissingTagError is returned when a note is associated with a tag id that has
// no row in the tags table. It unwraps to ErrNotFound.
type MissingTagError struct {
	TagID string
}

func (e *MissingTagError) Error() string {
	return fmt.Sprintf("tag %q not found", e.TagID)
}

func (e *MissingTagError) Unwrap() error {
	return ErrNotFound
}

// NoteRepository exposes all note data operations.
// No handler may query the DB directly; all access goes through this interface.
type NoteRepository interface {
	Create(ctx context.Context, title, body string, tagIDs []string) (*Note, error)
	GetByID(ctx context.Context, id string) (*Note, error)
	ListAll(ctx context.Context) ([]*Note, error)
	Update(ctx context.Context, id string, u NoteUpdate) (*Note, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	ListTags(ctx context.Context, noteID string) ([]*Tag, error)
	ListByTag(ctx context.Context, tagID string) ([]*Note, error)
}

// TagRepository exposes tag operations.
type TagRepository interface {
	Create(ctx context.Context, name string) (*Tag, error)
	GetByID(ctx context.Context, id string) (*Tag, error)
	ListAll(ctx context.Context) ([]*Tag, error)
	Update(ctx context.Context, id string, u TagUpdate) (*Tag, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// dedupe returns ids with duplicates removed, preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// isDBLockError reports whether err is a transient SQLite lock error.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy")
}

// ErrBusy is returned when the database reports lock contention.
var ErrBusy = errors.New("database is busy")

// wrapBusy maps lock contention to ErrBusy so callers can answer 503 instead of 500.
func wrapBusy(err error) error {
	if isDBLockError(err) {
		return fmt.Errorf("%w: %v", ErrBusy, err)
	}
	return err
}
