package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/models"
)

type budgetRepository struct {
	*DB
	logger *logger.Logger
}

func NewBudgetRepository(db *DB, logger *logger.Logger) BudgetRepository {
	return &budgetRepository{
		DB:     db,
		logger: logger,
	}
}

func (b *budgetRepository) SaveEntry(ctx context.Context, entry models.BudgetEntry) error {
	log := logger.FromContext(ctx)

	_, err := b.DB.ExecContext(ctx, saveBudgetEntry,
		entry.ID,
		entry.Amount,
		entry.Currency,
		entry.Category,
		entry.Description,
		entry.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.SaveEntry").
			Str("id", entry.ID).
			Msg("failed to execute insert for budget entry")
		return fmt.Errorf("failed to save budget entry (id=%s): %w", entry.ID, err)
	}

	return nil
}

// GetEntries returns stored expenses, newest first. An empty category returns
// every entry; a non-empty one narrows the result to that category.
func (b *budgetRepository) GetEntries(ctx context.Context, category string) ([]models.BudgetEntry, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "amount", "currency", "category", "description", "created_at").
		From("budget_entries").
		OrderBy("created_at DESC")
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.GetEntries").
			Msg("failed to build budget entries query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.GetEntries").
			Str("category", category).
			Msg("failed to execute query for getting budget entries")
		return nil, fmt.Errorf("failed to query budget entries: %w", err)
	}
	defer rows.Close()

	var entries []models.BudgetEntry

	for rows.Next() {
		var entry models.BudgetEntry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.Amount,
			&entry.Currency,
			&entry.Category,
			&entry.Description,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "budgetRepository.GetEntries").
				Msg("failed to scan budget entry row")
			return nil, fmt.Errorf("failed to scan budget entry row: %w", scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "budgetRepository.GetEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating budget entry rows: %w", rowsErr)
	}

	return entries, nil
}

func (b *budgetRepository) DeleteEntry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := b.DB.ExecContext(ctx, deleteBudgetEntry, id)
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to execute delete for budget entry")
		return fmt.Errorf("failed to delete budget entry (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.DeleteEntry").
			Str("id", id).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "budgetRepository.DeleteEntry").
			Str("id", id).
			Msg("no rows affected during delete: entry not found")
		return ErrBudgetEntryNotFound
	}

	return nil
}
