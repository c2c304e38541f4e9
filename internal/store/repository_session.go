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

// sessionRowID is the fixed primary key of the single session snapshot row.
const sessionRowID = 1

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Save(ctx context.Context, blob string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("sessions").
		Columns("id", "snapshot", "updated_at").
		Values(sessionRowID, blob, time.Now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Msg("failed to build session upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Msg("failed to execute session upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) Load(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("snapshot").
		From("sessions").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Load").
			Msg("failed to build session select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob string
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSessionNotFound
		}
		log.Err(err).
			Str("func", "sessionRepository.Load").
			Msg("failed to scan session snapshot row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("sessions").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to build session delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to execute session delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
