package store

import (
	"context"

	"github.com/MKhiriev/go-trip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ScheduleRepository is the low-level local repository for itinerary days.
// Each day is stored as a single JSON payload keyed by its ISO date.
type ScheduleRepository interface {
	SaveDay(ctx context.Context, day models.DailySchedule) error
	GetDay(ctx context.Context, date string) (models.DailySchedule, error)
	GetAll(ctx context.Context) ([]models.DailySchedule, error)
	DeleteDay(ctx context.Context, date string) error
	ReplaceAll(ctx context.Context, days []models.DailySchedule) error
}

// BudgetRepository is the low-level local repository for expense entries.
type BudgetRepository interface {
	SaveEntry(ctx context.Context, entry models.BudgetEntry) error
	GetEntries(ctx context.Context, category string) ([]models.BudgetEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// JournalRepository is the low-level local repository for travel journal
// entries. Entries are append-only: no update statement exists.
type JournalRepository interface {
	SaveEntry(ctx context.Context, entry models.JournalEntry) error
	GetEntries(ctx context.Context) ([]models.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// WeatherRepository is the local cache of weather snapshots keyed by location.
type WeatherRepository interface {
	SaveSnapshot(ctx context.Context, location string, data models.WeatherData) error
	GetSnapshot(ctx context.Context, location string) (models.WeatherData, error)
}

// MetaRepository stores small application-level key/value facts,
// such as the version of the built-in itinerary last applied.
type MetaRepository interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key string, value string) error
}
