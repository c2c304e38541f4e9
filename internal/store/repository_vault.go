package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/securevault/securevault/internal/logger"
)

type vaultRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (v *vaultRepository) Save(ctx context.Context, userID, blob string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("vault_snapshots").
		Columns("user_id", "snapshot", "updated_at").
		Values(userID, blob, time.Now().UTC()).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Save").
			Str("user_id", userID).
			Msg("failed to build vault upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = v.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Save").
			Str("user_id", userID).
			Msg("failed to execute vault upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (v *vaultRepository) Load(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("snapshot").
		From("vault_snapshots").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Load").
			Str("user_id", userID).
			Msg("failed to build vault select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob string
	row := v.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSnapshotNotFound
		}
		log.Err(err).
			Str("func", "vaultRepository.Load").
			Str("user_id", userID).
			Msg("failed to scan vault snapshot row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}

func (v *vaultRepository) Delete(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("vault_snapshots").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Delete").
			Str("user_id", userID).
			Msg("failed to build vault delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = v.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Delete").
			Str("user_id", userID).
			Msg("failed to execute vault delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
