// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the shared data model of the go-trip-keeper
// application: the day-by-day itinerary, weather snapshots, the budget
// ledger, journal entries, chat messages, and the relay's HTTP contracts.
//
// Types in this package are plain data carriers with no behavior beyond
// small derivation helpers; all business logic lives in the service layer.
package models

// ItemCategory classifies a scheduled event.
type ItemCategory string

// Fixed set of itinerary item categories.
const (
	CategoryHotel     ItemCategory = "hotel"
	CategoryActivity  ItemCategory = "activity"
	CategoryFlight    ItemCategory = "flight"
	CategoryMass      ItemCategory = "mass"
	CategoryTransport ItemCategory = "transport"
)

// ReadMoreLink is an external further-reading reference attached to an item.
type ReadMoreLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ItineraryItem is a single scheduled event belonging to one calendar day.
//
// Items are created either by the built-in seed or by the user; user edits
// mutate the item in place, and items are never shared across days.
type ItineraryItem struct {
	// ID is the unique item identifier (string, stable across merges).
	ID string `json:"id"`

	// Time is the time of day in "HH:MM" 24-hour format.
	Time string `json:"time"`

	// Location is a free-text place description.
	Location string `json:"location"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// LongDescription optionally expands Description for the detail view.
	LongDescription string `json:"longDescription,omitempty"`

	// OpeningHours optionally carries venue/tour hours as free text.
	OpeningHours string `json:"openingHours,omitempty"`

	// Tips optionally lists short practical notes for the event.
	Tips []string `json:"tips,omitempty"`

	// Photo is a URL referencing the item's illustration.
	Photo string `json:"photo"`

	// Caution optionally carries a warning note shown with the item.
	Caution string `json:"caution,omitempty"`

	// Category is one of the fixed Category* values.
	Category ItemCategory `json:"type"`

	// Date is the owning day in ISO "YYYY-MM-DD" format. It should match
	// the date of the DailySchedule holding the item (not enforced).
	Date string `json:"date"`

	// ReadMoreLinks optionally lists external references for the item.
	ReadMoreLinks []ReadMoreLink `json:"readMoreLinks,omitempty"`
}

// DayWeather is the weather snapshot embedded in a day's tips block.
type DayWeather struct {
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Condition     string `json:"condition"`
	ConditionIcon string `json:"conditionIcon"`
	ReportURL     string `json:"reportUrl"`
}

// DailyTips groups day-level advice: a weather snapshot, a packing list,
// and a free-text awareness note.
type DailyTips struct {
	Weather DayWeather `json:"weather"`
	Bring   []string   `json:"bring,omitempty"`
	Aware   string     `json:"aware,omitempty"`
}

// DailySchedule is one calendar day of the itinerary.
//
// Invariant: exactly one DailySchedule exists per date.
type DailySchedule struct {
	// Date is the ISO "YYYY-MM-DD" date and the unique key of the day.
	Date string `json:"date"`

	Title string `json:"title"`

	// DailyTips optionally carries the day's weather/packing/awareness block.
	DailyTips *DailyTips `json:"dailyTips,omitempty"`

	// Items is the ordered sequence of events belonging to this day.
	Items []ItineraryItem `json:"items"`
}

// ItemIDSet returns the set of item identifiers present in the day.
func (d DailySchedule) ItemIDSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(d.Items))
	for _, item := range d.Items {
		ids[item.ID] = struct{}{}
	}
	return ids
}
