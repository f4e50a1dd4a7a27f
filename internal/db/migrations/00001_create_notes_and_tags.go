package migrations

// The notes, tags and note_tags tables. Column types differ per driver, so the
// schema is built in Go rather than a shared .sql file.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateNotesAndTags, downCreateNotesAndTags)
}

func upCreateNotesAndTags(ctx context.Context, tx *sql.Tx) error {
	id, text, ts := columnTypes()

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS notes (
    id         %[1]s PRIMARY KEY,
    title      %[2]s NOT NULL,
    body       %[2]s NOT NULL,
    created_at %[3]s NOT NULL,
    updated_at %[3]s NOT NULL
)`, id, text, ts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS tags (
    id         %[1]s PRIMARY KEY,
    name       %[2]s NOT NULL,
    created_at %[3]s NOT NULL,
    updated_at %[3]s NOT NULL
)`, id, text, ts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS note_tags (
    note_id %[1]s NOT NULL REFERENCES notes (id) ON DELETE CASCADE,
    tag_id  %[1]s NOT NULL REFERENCES tags (id) ON DELETE CASCADE,
    PRIMARY KEY (note_id, tag_id)
)`, id),
		`CREATE INDEX note_tags_tag_idx ON note_tags (tag_id)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create notes schema: %w", err)
		}
	}
	return nil
}

func downCreateNotesAndTags(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"note_tags", "tags", "notes"} {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
