// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/mock"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type weatherMocks struct {
	api       *mock.MockWeatherAPI
	repo      *mock.MockWeatherRepository
	schedule  *mock.MockScheduleRepository
	itinerary *mock.MockClientItineraryService
}

func newTestWeatherService(t *testing.T) (ClientWeatherService, weatherMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := weatherMocks{
		api:       mock.NewMockWeatherAPI(ctrl),
		repo:      mock.NewMockWeatherRepository(ctrl),
		schedule:  mock.NewMockScheduleRepository(ctrl),
		itinerary: mock.NewMockClientItineraryService(ctrl),
	}

	svc := NewClientWeatherService(m.api, m.repo, m.schedule, m.itinerary, logger.Nop())
	return svc, m
}

var errAPIDown = errors.New("api down")

// ─────────────────────────────────────────────────────────────────────────────
// Get / GetFresh
// ─────────────────────────────────────────────────────────────────────────────

func TestClientWeatherService_Get(t *testing.T) {
	const location = "Dubai, UAE"
	ctx := context.Background()

	t.Run("live fetch succeeds → stamped and cached", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		fetched := models.WeatherData{High: 27, Low: 18, Condition: "Sunny"}

		m.api.EXPECT().Fetch(ctx, location).Return(fetched, nil)
		m.repo.EXPECT().
			SaveSnapshot(ctx, location, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data models.WeatherData) error {
				assert.False(t, data.LastUpdated.IsZero(), "cache write must carry a fetch timestamp")
				return nil
			})

		got, err := svc.Get(ctx, location)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 27, got.High)
		assert.False(t, got.LastUpdated.IsZero())
	})

	t.Run("fetch fails → stale cache still served", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		stale := models.WeatherData{High: 24, LastUpdated: time.Now().Add(-48 * time.Hour)}

		m.api.EXPECT().Fetch(ctx, location).Return(models.WeatherData{}, errAPIDown)
		m.repo.EXPECT().GetSnapshot(ctx, location).Return(stale, nil)

		got, err := svc.Get(ctx, location)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 24, got.High)
	})

	t.Run("fetch fails, nothing cached → nil without error", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		m.api.EXPECT().Fetch(ctx, location).Return(models.WeatherData{}, errAPIDown)
		m.repo.EXPECT().GetSnapshot(ctx, location).Return(models.WeatherData{}, store.ErrWeatherNotCached)

		got, err := svc.Get(ctx, location)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("cache write failure does not hide a successful fetch", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		m.api.EXPECT().Fetch(ctx, location).Return(models.WeatherData{High: 27}, nil)
		m.repo.EXPECT().SaveSnapshot(ctx, location, gomock.Any()).Return(errors.New("disk full"))

		got, err := svc.Get(ctx, location)

		require.NoError(t, err)
		require.NotNil(t, got)
	})
}

func TestClientWeatherService_GetFresh(t *testing.T) {
	const location = "Muscat, Oman"
	ctx := context.Background()

	t.Run("fresh snapshot → served from cache", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		cached := models.WeatherData{High: 26, LastUpdated: time.Now().Add(-10 * time.Minute)}
		m.repo.EXPECT().GetSnapshot(ctx, location).Return(cached, nil)

		got, err := svc.GetFresh(ctx, location)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 26, got.High)
	})

	t.Run("stale snapshot → nil", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		cached := models.WeatherData{High: 26, LastUpdated: time.Now().Add(-2 * time.Hour)}
		m.repo.EXPECT().GetSnapshot(ctx, location).Return(cached, nil)

		got, err := svc.GetFresh(ctx, location)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("not cached → nil", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		m.repo.EXPECT().GetSnapshot(ctx, location).Return(models.WeatherData{}, store.ErrWeatherNotCached)

		got, err := svc.GetFresh(ctx, location)

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// RefreshAll
// ─────────────────────────────────────────────────────────────────────────────

func TestClientWeatherService_RefreshAll(t *testing.T) {
	ctx := context.Background()

	days := []models.DailySchedule{
		{Date: "2025-12-21", Title: "Arrival in Dubai"},
		{Date: "2025-12-22", Title: "Dubai Old Town"},
		{Date: "2025-12-27", Title: "Muscat Highlights"},
		{Date: "2025-12-28", Title: "Rest Day"}, // no inferable location
	}

	t.Run("deduplicated locations fetched, snapshots written back", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		m.schedule.EXPECT().GetAll(ctx).Return(days, nil)

		m.api.EXPECT().Fetch(ctx, "Dubai, UAE").Return(models.WeatherData{High: 27}, nil)
		m.api.EXPECT().Fetch(ctx, "Muscat, Oman").Return(models.WeatherData{High: 25}, nil)
		m.repo.EXPECT().SaveSnapshot(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

		m.itinerary.EXPECT().ApplyWeather(ctx, "Dubai, UAE", gomock.Any()).Return(nil)
		m.itinerary.EXPECT().ApplyWeather(ctx, "Muscat, Oman", gomock.Any()).Return(nil)

		snapshots, err := svc.RefreshAll(ctx)

		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, 27, snapshots["Dubai, UAE"].High)
		assert.Equal(t, 25, snapshots["Muscat, Oman"].High)
	})

	t.Run("no inferable locations → all known locations refreshed", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		m.schedule.EXPECT().GetAll(ctx).Return([]models.DailySchedule{
			{Date: "2025-12-28", Title: "Rest Day"},
		}, nil)
		m.api.EXPECT().Locations().Return([]string{"Dubai, UAE", "Hong Kong"})

		m.api.EXPECT().Fetch(ctx, "Dubai, UAE").Return(models.WeatherData{High: 27}, nil)
		m.api.EXPECT().Fetch(ctx, "Hong Kong").Return(models.WeatherData{High: 21}, nil)
		m.repo.EXPECT().SaveSnapshot(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

		m.itinerary.EXPECT().ApplyWeather(ctx, "Dubai, UAE", gomock.Any()).Return(nil)
		m.itinerary.EXPECT().ApplyWeather(ctx, "Hong Kong", gomock.Any()).Return(nil)

		snapshots, err := svc.RefreshAll(ctx)

		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Contains(t, snapshots, "Hong Kong")
	})

	t.Run("one location failing leaves the rest intact", func(t *testing.T) {
		svc, m := newTestWeatherService(t)

		m.schedule.EXPECT().GetAll(ctx).Return(days, nil)

		m.api.EXPECT().Fetch(ctx, "Dubai, UAE").Return(models.WeatherData{High: 27}, nil)
		m.api.EXPECT().Fetch(ctx, "Muscat, Oman").Return(models.WeatherData{}, errAPIDown)
		m.repo.EXPECT().SaveSnapshot(ctx, "Dubai, UAE", gomock.Any()).Return(nil)
		m.repo.EXPECT().GetSnapshot(ctx, "Muscat, Oman").Return(models.WeatherData{}, store.ErrWeatherNotCached)

		m.itinerary.EXPECT().ApplyWeather(ctx, "Dubai, UAE", gomock.Any()).Return(nil)

		snapshots, err := svc.RefreshAll(ctx)

		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Contains(t, snapshots, "Dubai, UAE")
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Background refresh job
// ─────────────────────────────────────────────────────────────────────────────

// fakeWeatherService counts RefreshAll calls; the job only needs that one
// method to behave.
type fakeWeatherService struct {
	ClientWeatherService
	calls atomic.Int32
}

func (f *fakeWeatherService) RefreshAll(ctx context.Context) (map[string]*models.WeatherData, error) {
	f.calls.Add(1)
	return nil, nil
}

func TestClientWeatherJob_StartAndStop(t *testing.T) {
	fake := &fakeWeatherService{}
	job := NewClientWeatherJob(fake)

	job.Start(context.Background(), 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return fake.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond, "job should tick repeatedly")

	job.Stop()
	after := fake.calls.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, after, fake.calls.Load(), "job must not tick after Stop")
}

func TestClientWeatherJob_StopWithoutStart(t *testing.T) {
	job := NewClientWeatherJob(&fakeWeatherService{})

	// Must not panic or block.
	job.Stop()
}
