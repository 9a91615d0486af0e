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

type scheduleRepository struct {
	*DB
	logger *logger.Logger
}

func NewScheduleRepository(db *DB, logger *logger.Logger) ScheduleRepository {
	return &scheduleRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *scheduleRepository) SaveDay(ctx context.Context, day models.DailySchedule) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(day)
	if err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.SaveDay").
			Str("date", day.Date).
			Msg("failed to encode schedule day payload")
		return fmt.Errorf("failed to encode schedule day (date=%s): %w", day.Date, err)
	}

	_, err = s.DB.ExecContext(ctx, saveScheduleDay, day.Date, payload)
	if err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.SaveDay").
			Str("date", day.Date).
			Msg("failed to execute upsert for schedule day")
		return fmt.Errorf("failed to save schedule day (date=%s): %w", day.Date, err)
	}

	return nil
}

func (s *scheduleRepository) GetDay(ctx context.Context, date string) (models.DailySchedule, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	row := s.DB.QueryRowContext(ctx, getScheduleDay, date)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailySchedule{}, ErrDayNotFound
		}
		log.Err(err).
			Str("func", "scheduleRepository.GetDay").
			Str("date", date).
			Msg("failed to scan schedule day row")
		return models.DailySchedule{}, fmt.Errorf("failed to scan schedule day row: %w", err)
	}

	var day models.DailySchedule
	if err := json.Unmarshal(payload, &day); err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.GetDay").
			Str("date", date).
			Msg("failed to decode schedule day payload")
		return models.DailySchedule{}, fmt.Errorf("failed to decode schedule day (date=%s): %w", date, err)
	}

	return day, nil
}

func (s *scheduleRepository) GetAll(ctx context.Context) ([]models.DailySchedule, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllScheduleDays)
	if err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.GetAll").
			Msg("failed to execute query for getting all schedule days")
		return nil, fmt.Errorf("failed to query all schedule days: %w", err)
	}
	defer rows.Close()

	var days []models.DailySchedule

	for rows.Next() {
		var payload []byte

		if scanErr := rows.Scan(&payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "scheduleRepository.GetAll").
				Msg("failed to scan schedule day row")
			return nil, fmt.Errorf("failed to scan schedule day row: %w", scanErr)
		}

		var day models.DailySchedule
		if decodeErr := json.Unmarshal(payload, &day); decodeErr != nil {
			// a single corrupted row must not take the whole itinerary down
			log.Warn().
				Str("func", "scheduleRepository.GetAll").
				Err(decodeErr).
				Msg("skipping schedule day with corrupted payload")
			continue
		}

		days = append(days, day)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "scheduleRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating schedule day rows: %w", rowsErr)
	}

	return days, nil
}

func (s *scheduleRepository) DeleteDay(ctx context.Context, date string) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, deleteScheduleDay, date)
	if err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.DeleteDay").
			Str("date", date).
			Msg("failed to execute delete for schedule day")
		return fmt.Errorf("failed to delete schedule day (date=%s): %w", date, err)
	}

	return nil
}

// ReplaceAll atomically swaps the stored itinerary for the given set of days.
func (s *scheduleRepository) ReplaceAll(ctx context.Context, days []models.DailySchedule) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllScheduleDays); err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.ReplaceAll").
			Msg("failed to clear schedule days")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, day := range days {
		payload, encodeErr := json.Marshal(day)
		if encodeErr != nil {
			log.Err(encodeErr).
				Str("func", "scheduleRepository.ReplaceAll").
				Str("date", day.Date).
				Msg("failed to encode schedule day payload")
			return fmt.Errorf("failed to encode schedule day (date=%s): %w", day.Date, encodeErr)
		}

		if _, err = tx.ExecContext(ctx, saveScheduleDay, day.Date, payload); err != nil {
			log.Err(err).
				Str("func", "scheduleRepository.ReplaceAll").
				Str("date", day.Date).
				Msg("failed to insert schedule day")
			return fmt.Errorf("failed to save schedule day (date=%s): %w", day.Date, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.ReplaceAll").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
