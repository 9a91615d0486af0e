package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
)

type metaRepository struct {
	*DB
	logger *logger.Logger
}

func NewMetaRepository(db *DB, logger *logger.Logger) MetaRepository {
	return &metaRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *metaRepository) GetValue(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	row := m.DB.QueryRowContext(ctx, getMetaValue, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrMetaKeyNotFound
		}
		log.Err(err).
			Str("func", "metaRepository.GetValue").
			Str("key", key).
			Msg("failed to scan meta value row")
		return "", fmt.Errorf("failed to scan meta value row: %w", err)
	}

	return value, nil
}

func (m *metaRepository) SetValue(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	_, err := m.DB.ExecContext(ctx, setMetaValue, key, value)
	if err != nil {
		log.Err(err).
			Str("func", "metaRepository.SetValue").
			Str("key", key).
			Msg("failed to execute upsert for meta value")
		return fmt.Errorf("failed to set meta value (key=%s): %w", key, err)
	}

	return nil
}
