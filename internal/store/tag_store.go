package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Tag represents a row in the tags table.
type Tag struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TagUpdate carries the fields of a partial tag update. Nil fields are left untouched.
type TagUpdate struct {
	Name *string
}

// TagStore is the sqlx-backed implementation of TagRepository.
type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// Create inserts a new tag. Names are not unique.
func (s *TagStore) Create(ctx context.Context, name string) (*Tag, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO tags (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)
	`), id, name, now, now)
	if err != nil {
		return nil, wrapBusy(err)
	}
	return s.GetByID(ctx, id)
}

// GetByID returns the tag matching id, or ErrNotFound.
func (s *TagStore) GetByID(ctx context.Context, id string) (*Tag, error) {
	var t Tag
	err := s.db.GetContext(ctx, &t, s.db.Rebind(`SELECT * FROM tags WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListAll returns all tags in creation order.
func (s *TagStore) ListAll(ctx context.Context) ([]*Tag, error) {
	tags := []*Tag{}
	err := s.db.SelectContext(ctx, &tags, `SELECT * FROM tags ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Update applies a partial update to a tag. Returns ErrNotFound if no row matched.
func (s *TagStore) Update(ctx context.Context, id string, u TagUpdate) (*Tag, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if u.Name != nil {
		_, err := s.db.ExecContext(ctx, s.db.Rebind(`
			UPDATE tags SET name = ?, updated_at = ? WHERE id = ?
		`), *u.Name, time.Now().UTC(), id)
		if err != nil {
			return nil, wrapBusy(err)
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes a tag and detaches it from every note.
func (s *TagStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapBusy(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM note_tags WHERE tag_id = ?`), id); err != nil {
		return wrapBusy(err)
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM tags WHERE id = ?`), id)
	if err != nil {
		return wrapBusy(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// DeleteAll removes every tag and every association. Notes are kept.
func (s *TagStore) DeleteAll(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapBusy(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM note_tags`); err != nil {
		return wrapBusy(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tags`); err != nil {
		return wrapBusy(err)
	}
	return tx.Commit()
}
