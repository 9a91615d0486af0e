package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
)

// Storages groups all client-side storage repositories into a single value
// that can be passed around the service layer.
type Storages struct {
	// ScheduleRepository is the SQLite-backed repository for itinerary days.
	ScheduleRepository ScheduleRepository
	// BudgetRepository is the SQLite-backed repository for expense entries.
	BudgetRepository BudgetRepository
	// JournalRepository is the SQLite-backed repository for journal entries.
	JournalRepository JournalRepository
	// WeatherRepository is the SQLite-backed weather snapshot cache.
	WeatherRepository WeatherRepository
	// MetaRepository stores application-level key/value facts.
	MetaRepository MetaRepository
}

// NewStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ScheduleRepository: NewScheduleRepository(db, logger),
		BudgetRepository:   NewBudgetRepository(db, logger),
		JournalRepository:  NewJournalRepository(db, logger),
		WeatherRepository:  NewWeatherRepository(db, logger),
		MetaRepository:     NewMetaRepository(db, logger),
	}, nil
}
