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

func newTestJournalService(t *testing.T) (ClientJournalService, *mock.MockJournalRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockJournalRepository(ctrl)

	return NewClientJournalService(repo, logger.Nop()), repo
}

func TestClientJournalService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("valid entry → stored with id, timestamp and images", func(t *testing.T) {
		svc, repo := newTestJournalService(t)

		images := []string{"data:image/jpeg;base64,AAAA"}
		repo.EXPECT().
			SaveEntry(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entry models.JournalEntry) error {
				assert.NotEmpty(t, entry.ID)
				assert.False(t, entry.CreatedAt.IsZero())
				assert.Equal(t, images, entry.Images)
				return nil
			})

		got, err := svc.Add(ctx, "Camel ride", "Sunset over the dunes.", images)

		require.NoError(t, err)
		assert.Equal(t, "Camel ride", got.Title)
	})

	t.Run("body only → accepted", func(t *testing.T) {
		svc, repo := newTestJournalService(t)

		repo.EXPECT().SaveEntry(ctx, gomock.Any()).Return(nil)

		_, err := svc.Add(ctx, "", "Quick note.", nil)

		require.NoError(t, err)
	})

	t.Run("blank title and body → rejected even with images", func(t *testing.T) {
		svc, _ := newTestJournalService(t)

		_, err := svc.Add(ctx, "   ", "", []string{"data:image/jpeg;base64,AAAA"})

		require.ErrorIs(t, err, ErrValidationEmptyEntry)
	})
}

func TestClientJournalService_ListAndDelete(t *testing.T) {
	svc, repo := newTestJournalService(t)
	ctx := context.Background()

	want := []models.JournalEntry{{ID: "b"}, {ID: "a"}}
	repo.EXPECT().GetEntries(ctx).Return(want, nil)
	repo.EXPECT().DeleteEntry(ctx, "a").Return(nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, svc.Delete(ctx, "a"))
}
