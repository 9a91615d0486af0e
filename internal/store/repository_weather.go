// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/models"
)

type weatherRepository struct {
	*DB
	logger *logger.Logger
}

func NewWeatherRepository(db *DB, logger *logger.Logger) WeatherRepository {
	return &weatherRepository{
		DB:     db,
		logger: logger,
	}
}

func (w *weatherRepository) SaveSnapshot(ctx context.Context, location string, data models.WeatherData) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(data)
	if err != nil {
		log.Err(err).
			Str("func", "weatherRepository.SaveSnapshot").
			Str("location", location).
			Msg("failed to encode weather snapshot")
		return fmt.Errorf("failed to encode weather snapshot (location=%s): %w", location, err)
	}

	_, err = w.DB.ExecContext(ctx, saveWeatherSnapshot, location, payload, data.LastUpdated)
	if err != nil {
		log.Err(err).
			Str("func", "weatherRepository.SaveSnapshot").
			Str("location", location).
			Msg("failed to execute upsert for weather snapshot")
		return fmt.Errorf("failed to save weather snapshot (location=%s): %w", location, err)
	}

	return nil
}

func (w *weatherRepository) GetSnapshot(ctx context.Context, location string) (models.WeatherData, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	row := w.DB.QueryRowContext(ctx, getWeatherSnapshot, location)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WeatherData{}, ErrWeatherNotCached
		}
		log.Err(err).
			Str("func", "weatherRepository.GetSnapshot").
			Str("location", location).
			Msg("failed to scan weather snapshot row")
		return models.WeatherData{}, fmt.Errorf("failed to scan weather snapshot row: %w", err)
	}

	var data models.WeatherData
	if err := json.Unmarshal(payload, &data); err != nil {
		log.Err(err).
			Str("func", "weatherRepository.GetSnapshot").
			Str("location", location).
			Msg("failed to decode weather snapshot")
		return models.WeatherData{}, fmt.Errorf("failed to decode weather snapshot (location=%s): %w", location, err)
	}

	return data, nil
}
