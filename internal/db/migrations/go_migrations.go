// Package migrations contains dialect-aware Go database migrations that cannot
// be expressed as a single cross-database SQL statement.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}

// columnTypes returns the id, text and timestamp column types for the current dialect.
// MySQL cannot index TEXT columns without a prefix length, so ids are VARCHAR there.
func columnTypes() (id, text, ts string) {
	switch dialect {
	case "postgres":
		return "VARCHAR(36)", "TEXT", "TIMESTAMPTZ"
	case "mysql":
		return "VARCHAR(36)", "TEXT", "DATETIME(6)"
	default: // sqlite3
		return "TEXT", "TEXT", "DATETIME"
	}
}
