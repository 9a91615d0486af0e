package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trip-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientItineraryService owns the persisted itinerary and funnels every
// mutation through a paired storage write. Methods returning the day list
// always return the state as persisted.
type ClientItineraryService interface {
	// Load returns the current itinerary, applying the seed policy first:
	// no saved state → the built-in seed is written and returned; offline →
	// saved state verbatim; online with a stored seed version differing
	// from the built-in one → merged itinerary, persisted together with
	// the new version.
	Load(ctx context.Context) ([]models.DailySchedule, error)

	// AddItem appends the item to the day named by item.Date (creating the
	// day if it does not exist yet) and persists the change.
	AddItem(ctx context.Context, item models.ItineraryItem) ([]models.DailySchedule, error)

	// UpdateItem applies the non-nil patch fields to the identified item.
	UpdateItem(ctx context.Context, date, itemID string, patch models.ItineraryItemPatch) ([]models.DailySchedule, error)

	// DeleteItem removes the identified item from its day.
	DeleteItem(ctx context.Context, date, itemID string) ([]models.DailySchedule, error)

	// ApplyWeather writes the snapshot into the dailyTips weather block of
	// every day whose inferred location matches, skipping days whose stored
	// reading is already identical. Items are never touched.
	ApplyWeather(ctx context.Context, location string, data models.WeatherData) error
}

// ClientBudgetService manages the multi-currency expense ledger.
type ClientBudgetService interface {
	// Add validates and stores a new expense, assigning its id and
	// creation time.
	Add(ctx context.Context, entry models.BudgetEntry) (models.BudgetEntry, error)

	// List returns entries newest first; an empty category means all.
	List(ctx context.Context, category string) ([]models.BudgetEntry, error)

	Delete(ctx context.Context, id string) error

	// TotalBase returns the ledger total converted to the base currency.
	TotalBase(ctx context.Context) (float64, error)
}

// ClientJournalService manages travel journal entries. Entries never change
// once written; they can only be added and deleted.
type ClientJournalService interface {
	Add(ctx context.Context, title, body string, images []string) (models.JournalEntry, error)
	List(ctx context.Context) ([]models.JournalEntry, error)
	Delete(ctx context.Context, id string) error
}

// ClientWeatherService is the connectivity-tolerant weather cache.
type ClientWeatherService interface {
	// Get attempts one live fetch and overwrites the cache on success; on
	// failure it falls back to the most recent cached snapshot of any age.
	// Returns nil when neither is available.
	Get(ctx context.Context, location string) (*models.WeatherData, error)

	// GetFresh is the fast path: it returns the cached snapshot only when
	// it is within the freshness window, never touching the network.
	GetFresh(ctx context.Context, location string) (*models.WeatherData, error)

	// RefreshAll fetches snapshots for every known location concurrently
	// and writes successful ones back into matching itinerary days.
	RefreshAll(ctx context.Context) (map[string]*models.WeatherData, error)
}

// ClientWeatherJob periodically re-runs the weather refresh in the
// background.
type ClientWeatherJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// ClientScheduleViewService computes ephemeral, non-persisted views over
// the current itinerary for display and for AI context. Nothing here
// touches storage; every method derives its answer from the arguments.
type ClientScheduleViewService interface {
	// TodaySchedule returns the day whose date equals now's local date.
	TodaySchedule(days []models.DailySchedule, now time.Time) (models.DailySchedule, bool)

	// Partition splits a day's items into done (strictly before now's
	// time of day) and upcoming, preserving the day's item order.
	Partition(day models.DailySchedule, now time.Time) (done, upcoming []models.ItineraryItem)

	// NextUp returns the first upcoming item of the day, if any.
	NextUp(day models.DailySchedule, now time.Time) (models.ItineraryItem, bool)

	// Highlights returns activity items whose titles do not match the
	// exclusion pattern, deduplicated by title in first-seen order.
	Highlights(day models.DailySchedule) []models.ItineraryItem

	// DefaultDayIndex picks the initially selected day: today's exact
	// date, else the earliest day strictly after today, else the last.
	DefaultDayIndex(days []models.DailySchedule, now time.Time) int

	// InferLocation resolves a day to one of the canonical weather
	// locations by keyword-matching the day title, then the first item's
	// location.
	InferLocation(day models.DailySchedule) (string, bool)
}

// ClientAssistantService is the client side of the AI assistant: it talks
// to the relay and adapts replies and audio for the UI.
type ClientAssistantService interface {
	// Ask sends the prompt with the prior conversation turns, the full
	// itinerary, and an optional device location. The history must not
	// include the prompt; it becomes the final user turn on the wire.
	// Returns the assistant's reply as a ready-to-append chat message.
	Ask(ctx context.Context, prompt string, history []models.ChatMessage, itinerary []models.DailySchedule, location *models.GeoLocation) (models.ChatMessage, error)

	// Speak synthesizes the passage and returns playable WAV bytes.
	// Returns [ErrNoAudioAvailable] when the relay answers without audio.
	Speak(ctx context.Context, text string) ([]byte, error)
}
