// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// it is a shorthand constructor for ItineraryItem used only in tests.
func it(id, date, title string) models.ItineraryItem {
	return models.ItineraryItem{
		ID:       id,
		Date:     date,
		Title:    title,
		Time:     "09:00",
		Category: models.CategoryActivity,
	}
}

// day is a shorthand constructor for DailySchedule used only in tests.
func day(date, title string, items ...models.ItineraryItem) models.DailySchedule {
	return models.DailySchedule{Date: date, Title: title, Items: items}
}

func itemIDs(d models.DailySchedule) []string {
	ids := make([]string, 0, len(d.Items))
	for _, item := range d.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// ─────────────────────────────────────────────────────────────────────────────
// BuildMergedItinerary — decision matrix (table-driven)
// ─────────────────────────────────────────────────────────────────────────────

// TestReconcileService_BuildMergedItinerary_DecisionMatrix covers every cell
// of the merge classification for a single day. Each sub-test is named after
// the condition it exercises so failures are immediately self-documenting.
func TestReconcileService_BuildMergedItinerary_DecisionMatrix(t *testing.T) {
	const date = "2025-12-21"

	tests := []struct {
		name       string
		seedDays   []models.DailySchedule
		savedDays  []models.DailySchedule
		removedIDs map[string]struct{}
		wantDates  []string
		wantIDs    map[string][]string
	}{
		// ── Days present only in the seed ────────────────────────────────────

		{
			name:      "SeedOnly → SeedVerbatim",
			seedDays:  []models.DailySchedule{day(date, "Arrival", it("1", date, "Arrival"))},
			savedDays: nil,
			wantDates: []string{date},
			wantIDs:   map[string][]string{date: {"1"}},
		},

		// ── Days present only in the saved state ─────────────────────────────

		{
			name:      "SavedOnly → AppendedAfterSeed",
			seedDays:  []models.DailySchedule{day(date, "Arrival", it("1", date, "Arrival"))},
			savedDays: []models.DailySchedule{day("2026-01-05", "Extra Day", it("50", "2026-01-05", "Custom"))},
			wantDates: []string{date, "2026-01-05"},
			wantIDs:   map[string][]string{date: {"1"}, "2026-01-05": {"50"}},
		},

		// ── Days present on both sides ───────────────────────────────────────

		{
			name:     "Both/UserAddition → AppendedAfterSeedItems",
			seedDays: []models.DailySchedule{day(date, "Arrival", it("1", date, "Arrival"), it("2", date, "Mass"))},
			savedDays: []models.DailySchedule{
				day(date, "Arrival", it("1", date, "Arrival"), it("2", date, "Mass"), it("99", date, "Family Dinner")),
			},
			wantDates: []string{date},
			wantIDs:   map[string][]string{date: {"1", "2", "99"}},
		},
		{
			name:     "Both/SeedItemDroppedFromSavedDay → Restored",
			seedDays: []models.DailySchedule{day(date, "Arrival", it("1", date, "Arrival"), it("2", date, "Mass"))},
			savedDays: []models.DailySchedule{
				day(date, "Arrival", it("2", date, "Mass")),
			},
			wantDates: []string{date},
			wantIDs:   map[string][]string{date: {"1", "2"}},
		},
		{
			name:     "Both/RemovedID → NeverResurrected",
			seedDays: []models.DailySchedule{day(date, "Arrival", it("1", date, "Arrival"))},
			savedDays: []models.DailySchedule{
				day(date, "Arrival", it("1", date, "Arrival"), it("25", date, "Cancelled Stop")),
			},
			removedIDs: map[string]struct{}{"25": {}},
			wantDates:  []string{date},
			wantIDs:    map[string][]string{date: {"1"}},
		},
		{
			name: "Both/MultipleExtraDays → RelativeOrderPreserved",
			seedDays: []models.DailySchedule{
				day(date, "Arrival", it("1", date, "Arrival")),
			},
			savedDays: []models.DailySchedule{
				day("2026-01-06", "Extra B", it("61", "2026-01-06", "B")),
				day(date, "Arrival", it("1", date, "Arrival")),
				day("2026-01-05", "Extra A", it("60", "2026-01-05", "A")),
			},
			wantDates: []string{date, "2026-01-06", "2026-01-05"},
			wantIDs:   map[string][]string{date: {"1"}, "2026-01-06": {"61"}, "2026-01-05": {"60"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := NewReconcileService()

			merged, err := svc.BuildMergedItinerary(context.Background(), test.seedDays, test.savedDays, test.removedIDs)
			require.NoError(t, err)

			gotDates := make([]string, 0, len(merged))
			for _, d := range merged {
				gotDates = append(gotDates, d.Date)
			}
			assert.Equal(t, test.wantDates, gotDates)

			for _, d := range merged {
				if want, ok := test.wantIDs[d.Date]; ok {
					assert.Equalf(t, want, itemIDs(d), "items of day %s", d.Date)
				}
			}
		})
	}
}

// TestReconcileService_BuildMergedItinerary_SeedMetadataWins verifies the
// literal policy that user edits to seed-originated items and day-level
// fields are discarded on every version bump.
func TestReconcileService_BuildMergedItinerary_SeedMetadataWins(t *testing.T) {
	const date = "2025-12-21"

	seedDay := day(date, "Arrival in Dubai", it("1", date, "Arrival"), it("2", date, "Mass"))
	seedDay.DailyTips = &models.DailyTips{Aware: "Arrive early."}

	savedDay := day(date, "My Renamed Day",
		it("1", date, "Arrival (edited by user)"),
		it("2", date, "Mass"),
		it("99", date, "Family Dinner"),
	)
	savedDay.DailyTips = &models.DailyTips{Aware: "user note"}

	svc := NewReconcileService()
	merged, err := svc.BuildMergedItinerary(
		context.Background(),
		[]models.DailySchedule{seedDay},
		[]models.DailySchedule{savedDay},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, merged, 1)

	got := merged[0]
	assert.Equal(t, "Arrival in Dubai", got.Title)
	require.NotNil(t, got.DailyTips)
	assert.Equal(t, "Arrive early.", got.DailyTips.Aware)

	require.Equal(t, []string{"1", "2", "99"}, itemIDs(got))
	assert.Equal(t, "Arrival", got.Items[0].Title, "edit to seed item must be discarded")
	assert.Equal(t, "Family Dinner", got.Items[2].Title, "user-added item must be kept")
}

func TestReconcileService_BuildMergedItinerary_NoSavedState(t *testing.T) {
	seedDays := []models.DailySchedule{
		day("2025-12-21", "Arrival", it("1", "2025-12-21", "Arrival")),
		day("2025-12-22", "City Tour", it("4", "2025-12-22", "City Tour")),
	}

	svc := NewReconcileService()
	merged, err := svc.BuildMergedItinerary(context.Background(), seedDays, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, seedDays, merged)
}

func TestReconcileService_BuildMergedItinerary_DoesNotMutateSeed(t *testing.T) {
	const date = "2025-12-21"

	seedDays := []models.DailySchedule{day(date, "Arrival", it("1", date, "Arrival"))}
	savedDays := []models.DailySchedule{day(date, "Arrival", it("1", date, "Arrival"), it("99", date, "Dinner"))}

	svc := NewReconcileService()
	_, err := svc.BuildMergedItinerary(context.Background(), seedDays, savedDays, nil)

	require.NoError(t, err)
	assert.Len(t, seedDays[0].Items, 1, "seed input must not grow user items")
}

func TestReconcileService_BuildMergedItinerary_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewReconcileService()
	_, err := svc.BuildMergedItinerary(ctx,
		[]models.DailySchedule{day("2025-12-21", "Arrival")},
		nil, nil)

	require.ErrorIs(t, err, context.Canceled)
}
