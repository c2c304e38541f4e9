package store

import (
	"database/sql"

	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
