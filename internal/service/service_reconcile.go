package service

import (
	"context"

	"github.com/MKhiriev/go-trip-keeper/models"
)

// reconcileService is the concrete implementation of ReconcileService.
// It performs a purely in-memory merge of seed and saved day slices; no
// storage layer or logger is required because the operation is stateless
// and produces no side effects.
type reconcileService struct{}

// NewReconcileService constructs a ReconcileService ready for use.
// Because BuildMergedItinerary is a stateless, in-memory operation,
// no dependencies (storage, config, logger) are needed.
func NewReconcileService() ReconcileService {
	return &reconcileService{}
}

// BuildMergedItinerary implements ReconcileService.
//
// It builds an O(1) lookup index over the saved days, then makes two
// linear passes to assemble the merged sequence:
//
//   - Pass 1 (over seedDays): emits every seed day. A seed day with a
//     saved counterpart keeps the seed's day-level metadata and items
//     unconditionally, then appends the saved day's user additions.
//   - Pass 2 (over savedDays): appends days the seed no longer (or never)
//     carried, unchanged and in their original relative order.
//
// User-added means an item id absent from both the seed day's id set and
// removedIDs. Edits a user made to seed-originated items are deliberately
// discarded: the seed's copy wins on every version bump.
//
// ctx cancellation is checked at the start of each iteration so that
// callers can abort early when operating on large itineraries.
func (s *reconcileService) BuildMergedItinerary(
	ctx context.Context,
	seedDays, savedDays []models.DailySchedule,
	removedIDs map[string]struct{},
) ([]models.DailySchedule, error) {
	merged := make([]models.DailySchedule, 0, len(seedDays)+len(savedDays))

	// Build an O(1) lookup index keyed by date.
	savedIndex := make(map[string]models.DailySchedule, len(savedDays))
	for _, saved := range savedDays {
		savedIndex[saved.Date] = saved
	}

	seedDates := make(map[string]struct{}, len(seedDays))

	// ── Pass 1: iterate over seed days ──────────────────────────────────────
	for _, seedDay := range seedDays {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seedDates[seedDay.Date] = struct{}{}

		saved, hasSaved := savedIndex[seedDay.Date]
		if !hasSaved {
			// Date is new in this seed revision → take the seed day as-is.
			merged = append(merged, seedDay)
			continue
		}

		// Date exists on both sides. Day-level metadata (title, tips,
		// weather) and seed items always come from the seed; any saved
		// item missing from the seed day's id set is a user addition and
		// is appended after the seed items, unless the seed revision
		// explicitly removed it.
		day := seedDay
		day.Items = append([]models.ItineraryItem(nil), seedDay.Items...)

		seedIDs := seedDay.ItemIDSet()
		for _, item := range saved.Items {
			if _, fromSeed := seedIDs[item.ID]; fromSeed {
				continue
			}
			if _, removed := removedIDs[item.ID]; removed {
				continue
			}
			day.Items = append(day.Items, item)
		}

		merged = append(merged, day)
	}

	// ── Pass 2: append saved days absent from the seed ──────────────────────
	for _, saved := range savedDays {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, inSeed := seedDates[saved.Date]; inSeed {
			// Already handled in pass 1.
			continue
		}

		merged = append(merged, saved)
	}

	return merged, nil
}
