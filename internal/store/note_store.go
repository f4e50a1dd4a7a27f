package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Note represents a row in the notes table.
type Note struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NoteUpdate carries the fields of a partial update. Nil fields are left
// untouched. A non-nil TagIDs replaces the note's whole tag set, and an empty
// slice clears it.
type NoteUpdate struct {
	Title  *string
	Body   *string
	TagIDs *[]string
}

// NoteStore is the sqlx-backed implementation of NoteRepository.
type NoteStore struct {
	db *sqlx.DB
}

func NewNoteStore(db *sqlx.DB) *NoteStore {
	return &NoteStore{db: db}
}

// Create inserts a new note and associates it with tagIDs in one transaction.
// Returns *MissingTagError if any tag id does not exist; nothing is written.
func (s *NoteStore) Create(ctx context.Context, title, body string, tagIDs []string) (*Note, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, wrapBusy(err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO notes (id, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`), id, title, body, now, now)
	if err != nil {
		return nil, wrapBusy(err)
	}

	if err := replaceNoteTags(ctx, tx, id, tagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapBusy(err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the note matching id, or ErrNotFound.
func (s *NoteStore) GetByID(ctx context.Context, id string) (*Note, error) {
	var n Note
	err := s.db.GetContext(ctx, &n, s.db.Rebind(`SELECT * FROM notes WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListAll returns all notes in creation order.
func (s *NoteStore) ListAll(ctx context.Context) ([]*Note, error) {
	notes := []*Note{}
	err := s.db.SelectContext(ctx, &notes, `SELECT * FROM notes ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update applies a partial update. Field changes and the tag replacement run
// in the same transaction, so a missing tag leaves the note exactly as it was.
func (s *NoteStore) Update(ctx context.Context, id string, u NoteUpdate) (*Note, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, wrapBusy(err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.GetContext(ctx, &exists, tx.Rebind(`SELECT COUNT(*) FROM notes WHERE id = ?`), id)
	if err != nil {
		return nil, wrapBusy(err)
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}
	if u.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *u.Title)
	}
	if u.Body != nil {
		sets = append(sets, "body = ?")
		args = append(args, *u.Body)
	}
	args = append(args, id)

	query := `UPDATE notes SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return nil, wrapBusy(err)
	}

	if u.TagIDs != nil {
		if err := replaceNoteTags(ctx, tx, id, *u.TagIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapBusy(err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a note and its tag associations. Returns ErrNotFound if no row matched.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapBusy(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM note_tags WHERE note_id = ?`), id); err != nil {
		return wrapBusy(err)
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM notes WHERE id = ?`), id)
	if err != nil {
		return wrapBusy(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// DeleteAll removes every note and every association. Tags are kept.
func (s *NoteStore) DeleteAll(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapBusy(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM note_tags`); err != nil {
		return wrapBusy(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return wrapBusy(err)
	}
	return tx.Commit()
}

// ListTags returns all tags associated with a note, ordered by name.
func (s *NoteStore) ListTags(ctx context.Context, noteID string) ([]*Tag, error) {
	tags := []*Tag{}
	err := s.db.SelectContext(ctx, &tags, s.db.Rebind(`
		SELECT t.* FROM tags t
		INNER JOIN note_tags nt ON nt.tag_id = t.id
		WHERE nt.note_id = ?
		ORDER BY t.name ASC, t.id ASC
	`), noteID)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ListByTag returns all notes that carry the given tag id, in creation order.
func (s *NoteStore) ListByTag(ctx context.Context, tagID string) ([]*Note, error) {
	notes := []*Note{}
	err := s.db.SelectContext(ctx, &notes, s.db.Rebind(`
		SELECT n.* FROM notes n
		INNER JOIN note_tags nt ON nt.note_id = n.id
		WHERE nt.tag_id = ?
		ORDER BY n.created_at ASC, n.id ASC
	`), tagID)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// replaceNoteTags clears the note's associations and links it to tagIDs.
// Every tag id is checked inside tx; the first missing one aborts with *MissingTagError.
func replaceNoteTags(ctx context.Context, tx *sqlx.Tx, noteID string, tagIDs []string) error {
	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM note_tags WHERE note_id = ?`), noteID); err != nil {
		return wrapBusy(err)
	}

	for _, tagID := range dedupe(tagIDs) {
		var count int
		if err := tx.GetContext(ctx, &count, tx.Rebind(`SELECT COUNT(*) FROM tags WHERE id = ?`), tagID); err != nil {
			return wrapBusy(err)
		}
		if count == 0 {
			return &MissingTagError{TagID: tagID}
		}
		_, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO note_tags (note_id, tag_id) VALUES (?, ?)
		`), noteID, tagID)
		if err != nil {
			return wrapBusy(err)
		}
	}
	return nil
}
