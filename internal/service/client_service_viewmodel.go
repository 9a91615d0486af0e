package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-trip-keeper/models"
)

// highlightExclusions filters logistics out of a day's highlight list:
// anything that is travel plumbing rather than a sight.
var highlightExclusions = regexp.MustCompile(`(?i)(arrival|flight|transfer|check-?in|hotel|lunch|dinner)`)

// locationRule maps a keyword pattern to a canonical weather location name.
type locationRule struct {
	pattern  *regexp.Regexp
	location string
}

// Rule order matters: "Abu Dhabi" must be tested before "Dubai" because
// day titles like "Abu Dhabi Day Trip from Dubai" mention both.
var dayTitleLocationRules = []locationRule{
	{regexp.MustCompile(`(?i)abu dhabi`), "Abu Dhabi, UAE"},
	{regexp.MustCompile(`(?i)dubai`), "Dubai, UAE"},
	{regexp.MustCompile(`(?i)muscat`), "Muscat, Oman"},
	{regexp.MustCompile(`(?i)nizwa`), "Nizwa, Oman"},
	{regexp.MustCompile(`(?i)jabal|jebel|akhdar`), "Jebel Akhdar, Oman"},
	{regexp.MustCompile(`(?i)wahiba|desert`), "Wahiba Sands, Oman"},
}

// Item locations carry airport codes, so the fallback rules differ from the
// title rules.
var itemLocationRules = []locationRule{
	{regexp.MustCompile(`(?i)DXB|Dubai`), "Dubai, UAE"},
	{regexp.MustCompile(`(?i)abu dhabi`), "Abu Dhabi, UAE"},
	{regexp.MustCompile(`(?i)MCT|Muscat`), "Muscat, Oman"},
	{regexp.MustCompile(`(?i)nizwa`), "Nizwa, Oman"},
	{regexp.MustCompile(`(?i)jabal|jebel|akhdar`), "Jebel Akhdar, Oman"},
	{regexp.MustCompile(`(?i)wahiba|desert`), "Wahiba Sands, Oman"},
}

// inferLocation resolves a day to a canonical weather location. The day
// title is the strong signal; the first item's location is the fallback.
// Shared by the view service, the weather refresher and the itinerary
// weather write-back so all three agree on which days belong to a place.
func inferLocation(day models.DailySchedule) (string, bool) {
	for _, rule := range dayTitleLocationRules {
		if rule.pattern.MatchString(day.Title) {
			return rule.location, true
		}
	}

	if len(day.Items) == 0 {
		return "", false
	}
	for _, rule := range itemLocationRules {
		if rule.pattern.MatchString(day.Items[0].Location) {
			return rule.location, true
		}
	}

	return "", false
}

// minutesOfDay parses an "HH:MM" clock value into minutes since midnight.
// Malformed values report ok=false and the caller treats the item as
// upcoming, so a bad user edit never hides an event.
func minutesOfDay(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

type clientScheduleViewService struct{}

// NewClientScheduleViewService constructs the stateless schedule view
// service.
func NewClientScheduleViewService() ClientScheduleViewService {
	return &clientScheduleViewService{}
}

// TodaySchedule implements ClientScheduleViewService. Today means an exact
// ISO date match in now's local time zone.
func (s *clientScheduleViewService) TodaySchedule(days []models.DailySchedule, now time.Time) (models.DailySchedule, bool) {
	today := now.Format("2006-01-02")
	for _, day := range days {
		if day.Date == today {
			return day, true
		}
	}
	return models.DailySchedule{}, false
}

// Partition implements ClientScheduleViewService. An item is done when its
// time of day is strictly before now's time of day; comparing wall-clock
// minutes only is intentional, the owning day already fixes the date.
func (s *clientScheduleViewService) Partition(day models.DailySchedule, now time.Time) (done, upcoming []models.ItineraryItem) {
	nowMinutes := now.Hour()*60 + now.Minute()

	for _, item := range day.Items {
		itemMinutes, ok := minutesOfDay(item.Time)
		if ok && itemMinutes < nowMinutes {
			done = append(done, item)
			continue
		}
		upcoming = append(upcoming, item)
	}
	return done, upcoming
}

// NextUp implements ClientScheduleViewService.
func (s *clientScheduleViewService) NextUp(day models.DailySchedule, now time.Time) (models.ItineraryItem, bool) {
	_, upcoming := s.Partition(day, now)
	if len(upcoming) == 0 {
		return models.ItineraryItem{}, false
	}
	return upcoming[0], true
}

// Highlights implements ClientScheduleViewService. Only activity items
// count, logistics titles are filtered out, and duplicate titles keep the
// first occurrence.
func (s *clientScheduleViewService) Highlights(day models.DailySchedule) []models.ItineraryItem {
	seen := make(map[string]struct{}, len(day.Items))
	highlights := make([]models.ItineraryItem, 0, len(day.Items))

	for _, item := range day.Items {
		if item.Category != models.CategoryActivity {
			continue
		}
		if highlightExclusions.MatchString(item.Title) {
			continue
		}
		if _, dup := seen[item.Title]; dup {
			continue
		}
		seen[item.Title] = struct{}{}
		highlights = append(highlights, item)
	}

	return highlights
}

// DefaultDayIndex implements ClientScheduleViewService. Preference order:
// today's exact date, the earliest day strictly after today, the last day.
// Returns -1 only for an empty itinerary.
func (s *clientScheduleViewService) DefaultDayIndex(days []models.DailySchedule, now time.Time) int {
	if len(days) == 0 {
		return -1
	}

	today := now.Format("2006-01-02")
	for i, day := range days {
		if day.Date == today {
			return i
		}
	}

	// ISO dates compare correctly as strings.
	for i, day := range days {
		if day.Date > today {
			return i
		}
	}

	return len(days) - 1
}

// InferLocation implements ClientScheduleViewService.
func (s *clientScheduleViewService) InferLocation(day models.DailySchedule) (string, bool) {
	return inferLocation(day)
}
