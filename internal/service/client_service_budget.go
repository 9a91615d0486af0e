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

type clientBudgetService struct {
	budgetRepo store.BudgetRepository

	logger *logger.Logger
}

// NewClientBudgetService constructs the expense ledger service.
func NewClientBudgetService(budgetRepo store.BudgetRepository, logger *logger.Logger) ClientBudgetService {
	return &clientBudgetService{budgetRepo: budgetRepo, logger: logger}
}

// Add implements ClientBudgetService. The entry's id and creation time are
// always assigned here, never taken from the caller.
func (s *clientBudgetService) Add(ctx context.Context, entry models.BudgetEntry) (models.BudgetEntry, error) {
	log := logger.FromContext(ctx)

	if entry.Amount <= 0 {
		return models.BudgetEntry{}, ErrValidationInvalidAmount
	}
	if !entry.Currency.IsValid() {
		return models.BudgetEntry{}, ErrValidationInvalidCurrency
	}

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	entry.Category = strings.TrimSpace(entry.Category)

	if err := s.budgetRepo.SaveEntry(ctx, entry); err != nil {
		log.Err(err).Str("func", "clientBudgetService.Add").Msg("error saving budget entry")
		return models.BudgetEntry{}, fmt.Errorf("error saving budget entry: %w", err)
	}

	return entry, nil
}

// List implements ClientBudgetService.
func (s *clientBudgetService) List(ctx context.Context, category string) ([]models.BudgetEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := s.budgetRepo.GetEntries(ctx, strings.TrimSpace(category))
	if err != nil {
		log.Err(err).Str("func", "clientBudgetService.List").Msg("error listing budget entries")
		return nil, fmt.Errorf("error listing budget entries: %w", err)
	}

	return entries, nil
}

// Delete implements ClientBudgetService.
func (s *clientBudgetService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.budgetRepo.DeleteEntry(ctx, id); err != nil {
		log.Err(err).Str("func", "clientBudgetService.Delete").Msg("error deleting budget entry")
		return fmt.Errorf("error deleting budget entry: %w", err)
	}

	return nil
}

// TotalBase implements ClientBudgetService. Conversion uses the fixed trip
// exchange rates.
func (s *clientBudgetService) TotalBase(ctx context.Context) (float64, error) {
	entries, err := s.List(ctx, "")
	if err != nil {
		return 0, err
	}

	var total float64
	for _, entry := range entries {
		total += entry.BaseAmount()
	}

	return total, nil
}
