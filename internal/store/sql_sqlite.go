package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/securevault/securevault/internal/config"
	"github.com/securevault/securevault/internal/logger"
)

// NewConnectSQLite opens the local snapshot database at cfg.DSN, creating
// the file and its parent directory on first run, and verifies the
// connection with a ping.
//
// busy_timeout covers the short window where the TUI goroutine and a
// background worker snapshot at the same time.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("cannot prepare database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", cfg.DSN+"?_busy_timeout=5000")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("cannot open database")
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// A single connection sidesteps SQLITE_BUSY between writers entirely.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("database ping failed")
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to local database")

	return &DB{DB: conn, logger: log}, nil
}

// ensureDBFile creates the database file and any missing parent directories
// so that sql.Open never fails on a fresh install.
func ensureDBFile(dsn string) error {
	if _, err := os.Stat(dsn); err == nil {
		return nil
	}

	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	f, err := os.OpenFile(dsn, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create database file: %w", err)
	}
	return f.Close()
}
