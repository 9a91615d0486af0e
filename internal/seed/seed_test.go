package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItinerary_Shape(t *testing.T) {
	days := Itinerary()

	require.Len(t, days, 9)
	assert.Equal(t, "2025-12-21", days[0].Date)
	assert.Equal(t, "2025-12-29", days[len(days)-1].Date)

	seen := make(map[string]struct{})
	for _, day := range days {
		_, duplicate := seen[day.Date]
		require.Falsef(t, duplicate, "duplicate day %s", day.Date)
		seen[day.Date] = struct{}{}

		require.NotNil(t, day.DailyTips, "day %s has no tips", day.Date)
		for _, item := range day.Items {
			assert.Equalf(t, day.Date, item.Date, "item %s has mismatched date", item.ID)
			assert.NotEmptyf(t, item.Time, "item %s has no time", item.ID)
		}
	}
}

func TestItinerary_RemovedIDAbsent(t *testing.T) {
	for _, day := range Itinerary() {
		for _, item := range day.Items {
			_, removed := RemovedItemIDs[item.ID]
			assert.Falsef(t, removed, "removed id %s still present in seed", item.ID)
		}
	}
}

func TestItinerary_ReturnsFreshCopy(t *testing.T) {
	first := Itinerary()
	first[0].Title = "mutated"
	first[0].Items[0].Title = "mutated item"

	second := Itinerary()
	assert.Equal(t, "Arrival in Dubai", second[0].Title)
	assert.Equal(t, "Arrival", second[0].Items[0].Title)
}

func TestIconForCondition(t *testing.T) {
	tests := []struct {
		condition string
		expected  string
	}{
		{condition: "Breezy", expected: "BREEZY"},
		{condition: "strong wind", expected: "BREEZY"},
		{condition: "Humid", expected: "HUMID"},
		{condition: "Coastal", expected: "COASTAL"},
		{condition: "sea mist", expected: "COASTAL"},
		{condition: "Chilly", expected: "CHILLY"},
		{condition: "cold night", expected: "CHILLY"},
		{condition: "Light snow", expected: "CHILLY"},
		{condition: "Dry", expected: "DRY"},
		{condition: "Clear", expected: "CLEAR"},
		{condition: "Sunny", expected: "SUNNY"},
		{condition: "anything else", expected: "SUNNY"},
	}

	for _, test := range tests {
		t.Run(test.condition, func(t *testing.T) {
			assert.Equal(t, test.expected, IconForCondition(test.condition))
		})
	}
}

func TestGoogleWeatherURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/search?q=weather+Dubai%2C+UAE",
		GoogleWeatherURL("Dubai, UAE"))
}
