package store

import (
	"context"
	"fmt"

	"github.com/securevault/securevault/internal/config"
	"github.com/securevault/securevault/internal/logger"
)

// Storages groups all client-side storage repositories into a single value
// that can be passed around the service layer.
type Storages struct {
	// Session is the repository for the encrypted session snapshot.
	Session SessionRepository

	// Vault is the repository for encrypted vault snapshots.
	Vault VaultRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Session: NewSessionRepository(db, logger),
		Vault:   NewVaultRepository(db, logger),
	}, nil
}
