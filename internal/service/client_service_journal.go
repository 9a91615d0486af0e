package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/google/uuid"
)

type clientJournalService struct {
	journalRepo store.JournalRepository

	logger *logger.Logger
}

// NewClientJournalService constructs the travel journal service.
func NewClientJournalService(journalRepo store.JournalRepository, logger *logger.Logger) ClientJournalService {
	return &clientJournalService{journalRepo: journalRepo, logger: logger}
}

// Add implements ClientJournalService. An entry needs at least a title or
// some body text; images alone are not enough.
func (s *clientJournalService) Add(ctx context.Context, title, body string, images []string) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" && body == "" {
		return models.JournalEntry{}, ErrValidationEmptyEntry
	}

	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Title:     title,
		Body:      body,
		Images:    images,
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		log.Err(err).Str("func", "clientJournalService.Add").Msg("error saving journal entry")
		return models.JournalEntry{}, fmt.Errorf("error saving journal entry: %w", err)
	}

	return entry, nil
}

// List implements ClientJournalService. Entries come back newest first.
func (s *clientJournalService) List(ctx context.Context) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := s.journalRepo.GetEntries(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientJournalService.List").Msg("error listing journal entries")
		return nil, fmt.Errorf("error listing journal entries: %w", err)
	}

	return entries, nil
}

// Delete implements ClientJournalService.
func (s *clientJournalService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.journalRepo.DeleteEntry(ctx, id); err != nil {
		log.Err(err).Str("func", "clientJournalService.Delete").Msg("error deleting journal entry")
		return fmt.Errorf("error deleting journal entry: %w", err)
	}

	return nil
}
