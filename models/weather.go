package models

import "time"

// WeatherFreshnessWindow is how long a cached snapshot counts as "fresh".
// Freshness only gates the fast-path cache read; an online fetch always
// overwrites the cache regardless of the previous snapshot's age.
const WeatherFreshnessWindow = time.Hour

// WeatherData is a per-location weather snapshot owned by the weather cache.
// One entry exists per canonical location name.
type WeatherData struct {
	High          int    `json:"high"`
	Low           int    `json:"low"`
	Condition     string `json:"condition"`
	ConditionIcon string `json:"conditionIcon"`

	// ReportURL links to an external full weather report for the location.
	ReportURL string `json:"reportUrl"`

	// LastUpdated is when the snapshot was fetched. Zero for snapshots
	// that never went through the cache (e.g. seed-embedded values).
	LastUpdated time.Time `json:"lastUpdated,omitempty"`
}

// IsFresh reports whether the snapshot is within the freshness window
// relative to now.
func (w WeatherData) IsFresh(now time.Time) bool {
	if w.LastUpdated.IsZero() {
		return false
	}
	return now.Sub(w.LastUpdated) < WeatherFreshnessWindow
}

// DayWeather converts the snapshot into the form embedded in a day's tips.
// The LastUpdated timestamp stays behind, so two snapshots with the same
// displayed values convert to equal DayWeather values.
func (w WeatherData) DayWeather() DayWeather {
	return DayWeather{
		High:          w.High,
		Low:           w.Low,
		Condition:     w.Condition,
		ConditionIcon: w.ConditionIcon,
		ReportURL:     w.ReportURL,
	}
}
