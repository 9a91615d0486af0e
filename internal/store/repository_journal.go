package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/models"
)

type journalRepository struct {
	*DB
	logger *logger.Logger
}

func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

func (j *journalRepository) SaveEntry(ctx context.Context, entry models.JournalEntry) error {
	log := logger.FromContext(ctx)

	images, err := encodeImages(entry.Images)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.SaveEntry").
			Str("id", entry.ID).
			Msg("failed to encode journal images")
		return fmt.Errorf("failed to encode journal images (id=%s): %w", entry.ID, err)
	}

	_, err = j.DB.ExecContext(ctx, saveJournalEntry,
		entry.ID,
		entry.CreatedAt,
		entry.Title,
		entry.Body,
		images,
	)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.SaveEntry").
			Str("id", entry.ID).
			Msg("failed to execute insert for journal entry")
		return fmt.Errorf("failed to save journal entry (id=%s): %w", entry.ID, err)
	}

	return nil
}

func (j *journalRepository) GetEntries(ctx context.Context) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := j.DB.QueryContext(ctx, getJournalEntries)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.GetEntries").
			Msg("failed to execute query for getting journal entries")
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry

	for rows.Next() {
		var (
			entry  models.JournalEntry
			images string
		)

		scanErr := rows.Scan(
			&entry.ID,
			&entry.CreatedAt,
			&entry.Title,
			&entry.Body,
			&images,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "journalRepository.GetEntries").
				Msg("failed to scan journal entry row")
			return nil, fmt.Errorf("failed to scan journal entry row: %w", scanErr)
		}

		if decodeErr := json.Unmarshal([]byte(images), &entry.Images); decodeErr != nil {
			// a broken image list should not hide the text of the entry
			log.Warn().
				Str("func", "journalRepository.GetEntries").
				Str("id", entry.ID).
				Err(decodeErr).
				Msg("failed to decode journal images, keeping entry without them")
			entry.Images = nil
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "journalRepository.GetEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating journal entry rows: %w", rowsErr)
	}

	return entries, nil
}

func (j *journalRepository) DeleteEntry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := j.DB.ExecContext(ctx, deleteJournalEntry, id)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to execute delete for journal entry")
		return fmt.Errorf("failed to delete journal entry (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		return ErrJournalEntryNotFound
	}

	return nil
}

func encodeImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}

	payload, err := json.Marshal(images)
	if err != nil {
		return "", err
	}

	return string(payload), nil
}
