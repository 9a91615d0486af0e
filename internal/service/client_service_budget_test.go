package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/mock"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBudgetService(t *testing.T) (ClientBudgetService, *mock.MockBudgetRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockBudgetRepository(ctrl)

	return NewClientBudgetService(repo, logger.Nop()), repo
}

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

func TestClientBudgetService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("valid entry → id and timestamp assigned", func(t *testing.T) {
		svc, repo := newTestBudgetService(t)

		repo.EXPECT().
			SaveEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entry models.BudgetEntry) error {
				assert.NotEmpty(t, entry.ID)
				assert.False(t, entry.CreatedAt.IsZero())
				return nil
			})

		got, err := svc.Add(ctx, models.BudgetEntry{
			Amount:      120.50,
			Currency:    models.CurrencyAED,
			Category:    "Food",
			Description: "Souk lunch",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, models.CurrencyAED, got.Currency)
	})

	t.Run("caller-provided id is ignored", func(t *testing.T) {
		svc, repo := newTestBudgetService(t)

		repo.EXPECT().SaveEntry(ctx, gomock.Any()).Return(nil)

		got, err := svc.Add(ctx, models.BudgetEntry{ID: "forged", Amount: 1, Currency: models.CurrencyHKD})

		require.NoError(t, err)
		assert.NotEqual(t, "forged", got.ID)
	})

	t.Run("zero or negative amount → rejected", func(t *testing.T) {
		svc, _ := newTestBudgetService(t)

		_, err := svc.Add(ctx, models.BudgetEntry{Amount: 0, Currency: models.CurrencyHKD})
		require.ErrorIs(t, err, ErrValidationInvalidAmount)

		_, err = svc.Add(ctx, models.BudgetEntry{Amount: -5, Currency: models.CurrencyHKD})
		require.ErrorIs(t, err, ErrValidationInvalidAmount)
	})

	t.Run("unknown currency → rejected", func(t *testing.T) {
		svc, _ := newTestBudgetService(t)

		_, err := svc.Add(ctx, models.BudgetEntry{Amount: 10, Currency: "EUR"})

		require.ErrorIs(t, err, ErrValidationInvalidCurrency)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// List / Delete / TotalBase
// ─────────────────────────────────────────────────────────────────────────────

func TestClientBudgetService_List_PassesCategoryFilter(t *testing.T) {
	svc, repo := newTestBudgetService(t)
	ctx := context.Background()

	want := []models.BudgetEntry{{ID: "a", Category: "Food"}}
	repo.EXPECT().GetEntries(ctx, "Food").Return(want, nil)

	got, err := svc.List(ctx, "  Food ")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientBudgetService_Delete(t *testing.T) {
	svc, repo := newTestBudgetService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteEntry(ctx, "a").Return(nil)

	require.NoError(t, svc.Delete(ctx, "a"))
}

func TestClientBudgetService_TotalBase_ConvertsWithFixedRates(t *testing.T) {
	svc, repo := newTestBudgetService(t)
	ctx := context.Background()

	repo.EXPECT().GetEntries(ctx, "").Return([]models.BudgetEntry{
		{Amount: 100, Currency: models.CurrencyAED}, // 212.00 HKD
		{Amount: 10, Currency: models.CurrencyOMR},  // 202.60 HKD
		{Amount: 50, Currency: models.CurrencyHKD},  // 50.00 HKD
	}, nil)

	total, err := svc.TotalBase(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 464.60, total, 0.001)
}
