// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/seed"
	"github.com/MKhiriev/go-trip-keeper/internal/utils"
	"github.com/MKhiriev/go-trip-keeper/models"
)

const wttrBaseURL = "https://wttr.in"

// locationCoords maps canonical itinerary location names to the place names
// (and coordinates, kept for reference) used against the weather API.
var locationCoords = map[string]struct {
	Lat  float64
	Lon  float64
	Name string
}{
	"Dubai, UAE":         {Lat: 25.2048, Lon: 55.2708, Name: "Dubai"},
	"Abu Dhabi, UAE":     {Lat: 24.4539, Lon: 54.3773, Name: "Abu Dhabi"},
	"Muscat, Oman":       {Lat: 23.5859, Lon: 58.4059, Name: "Muscat"},
	"Nizwa, Oman":        {Lat: 22.9333, Lon: 57.5333, Name: "Nizwa"},
	"Jebel Akhdar, Oman": {Lat: 23.1167, Lon: 57.2833, Name: "Jebel Akhdar"},
	"Wahiba Sands, Oman": {Lat: 22.5, Lon: 58.5, Name: "Wahiba Sands"},
}

// wttr.in ?format=j1 response, trimmed to the fields we read.
type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
	Weather []struct {
		MaxTempC string `json:"maxtempC"`
		MinTempC string `json:"mintempC"`
	} `json:"weather"`
}

type wttrWeatherAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewWttrWeatherAPI constructs a [WeatherAPI] backed by the free wttr.in
// JSON endpoint. No API key is required.
func NewWttrWeatherAPI(logger *logger.Logger) WeatherAPI {
	client := utils.NewHTTPClient()
	client.SetBaseURL(wttrBaseURL)

	return &wttrWeatherAPI{client: client, logger: logger}
}

// Fetch implements [WeatherAPI]. It issues a single GET /{place}?format=j1
// request, reads today's min/max from the forecast block and the condition
// text from the current-condition block, and rounds the temperatures.
func (w *wttrWeatherAPI) Fetch(ctx context.Context, location string) (models.WeatherData, error) {
	coords, ok := locationCoords[location]
	if !ok {
		return models.WeatherData{}, fmt.Errorf("%w: %s", ErrUnknownLocation, location)
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("format", "j1").
		SetResult(&wttrResponse{}).
		Get("/" + url.PathEscape(coords.Name))
	if err != nil {
		return models.WeatherData{}, fmt.Errorf("weather request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WeatherData{}, err
	}

	data, ok := resp.Result().(*wttrResponse)
	if !ok || len(data.CurrentCondition) == 0 || len(data.Weather) == 0 {
		return models.WeatherData{}, fmt.Errorf("invalid weather data format for %s", location)
	}

	current := data.CurrentCondition[0]
	today := data.Weather[0]

	currentTemp := parseTemp(current.TempC, 0)
	high := parseTemp(today.MaxTempC, currentTemp)
	low := parseTemp(today.MinTempC, currentTemp)

	condition := "Clear"
	if len(current.WeatherDesc) > 0 && current.WeatherDesc[0].Value != "" {
		condition = current.WeatherDesc[0].Value
	}

	return models.WeatherData{
		High:          high,
		Low:           low,
		Condition:     condition,
		ConditionIcon: seed.IconForCondition(condition),
		ReportURL:     seed.GoogleWeatherURL(location),
	}, nil
}

// Locations implements [WeatherAPI]. The order is stable across calls.
func (w *wttrWeatherAPI) Locations() []string {
	locations := make([]string, 0, len(locationCoords))
	for location := range locationCoords {
		locations = append(locations, location)
	}
	sort.Strings(locations)

	return locations
}

func parseTemp(raw string, fallback int) int {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}

	return int(math.Round(value))
}
