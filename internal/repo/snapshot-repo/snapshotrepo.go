package snapshotrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/walletsync/internal/pg"
	"go.uber.org/zap"
)

// Repository keeps the last known wallet payload per session cache key.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT payload
		FROM wallet_cache
		WHERE cache_key = $1
	`
	var payload string
	err := r.db.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get cached wallet", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return []byte(payload), nil
}

func (r *Repository) Set(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO wallet_cache (cache_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (cache_key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, key, string(payload)); err != nil {
		zap.L().Error("failed to store cached wallet", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM wallet_cache
		WHERE cache_key = $1
	`
	if _, err := r.db.Exec(ctx, query, key); err != nil {
		zap.L().Error("failed to delete cached wallet", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
