package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trip-keeper/models"
)

// buildContextSummary produces the one-line schedule digest injected into
// the assistant's system instruction: today's day title, what is already
// done, how much is left and the next event coming up.
func buildContextSummary(itinerary []models.DailySchedule, now time.Time) string {
	today := now.Format("2006-01-02")

	var todaySchedule *models.DailySchedule
	for i := range itinerary {
		if itinerary[i].Date == today {
			todaySchedule = &itinerary[i]
			break
		}
	}
	if todaySchedule == nil {
		return "No activities scheduled for today."
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	var done, upcoming []models.ItineraryItem
	for _, item := range todaySchedule.Items {
		itemMinutes, ok := minutesOfDay(item.Time)
		if ok && itemMinutes < nowMinutes {
			done = append(done, item)
			continue
		}
		upcoming = append(upcoming, item)
	}

	doneTitles := make([]string, 0, len(done))
	for _, item := range done {
		doneTitles = append(doneTitles, item.Title)
	}
	doneList := strings.Join(doneTitles, ", ")
	if doneList == "" {
		doneList = "none"
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "Today: %s. ", todaySchedule.Title)
	fmt.Fprintf(&summary, "Completed: %d activities (%s). ", len(done), doneList)
	fmt.Fprintf(&summary, "Upcoming: %d activities. ", len(upcoming))
	if len(upcoming) > 0 {
		next := upcoming[0]
		fmt.Fprintf(&summary, "Next up: %s - %s at %s.", next.Time, next.Title, next.Location)
	}

	return summary.String()
}
