package main

import (
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/joestump/restful-notes/internal/config"
	"github.com/joestump/restful-notes/internal/db"
	"github.com/joestump/restful-notes/internal/logger"
)

// bootstrap loads config, installs the logger and opens a migrated database.
// The caller closes the returned handle.
func bootstrap() (*config.Config, zerolog.Logger, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}

	l, err := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	logger.SetGlobal(l)

	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, l, nil, err
	}

	if err := db.Migrate(database, cfg.DB.Driver, l); err != nil {
		_ = database.Close()
		return nil, l, nil, err
	}

	return cfg, l, database, nil
}
