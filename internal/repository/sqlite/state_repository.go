package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/phonicsplay/internal/logger"
	"github.com/vytor/phonicsplay/internal/repository"
)

type stateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a StateRepository backed by the app_state table.
func NewStateRepository(db *sql.DB) repository.StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("state_repo")

	query, args, err := sqlBuilder.Select("value").
		From(stateTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("state key not set: %s", key)
		return "", false, nil
	}
	if err != nil {
		log.Error("failed to read state key %s: %v", key, err)
		return "", false, err
	}
	return value, true, nil
}

func (r *stateRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx).WithPrefix("state_repo")

	query, args, err := sqlBuilder.Insert(stateTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to write state key %s: %v", key, err)
		return err
	}
	log.Debug("state key written: %s (%d bytes)", key, len(value))
	return nil
}

func (r *stateRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx).WithPrefix("state_repo")

	query, args, err := sqlBuilder.Delete(stateTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete state key %s: %v", key, err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		log.Debug("state key %s was not set", key)
	}
	return nil
}

func (r *stateRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
