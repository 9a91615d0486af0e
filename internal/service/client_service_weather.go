// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/adapter"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/models"
)

type clientWeatherService struct {
	weatherAPI  adapter.WeatherAPI
	weatherRepo store.WeatherRepository
	schedule    store.ScheduleRepository
	itinerary   ClientItineraryService

	logger *logger.Logger
}

// NewClientWeatherService constructs the connectivity-tolerant weather
// service. The schedule repository supplies the days whose locations need
// snapshots; the itinerary service performs the tips write-back.
func NewClientWeatherService(
	weatherAPI adapter.WeatherAPI,
	weatherRepo store.WeatherRepository,
	schedule store.ScheduleRepository,
	itinerary ClientItineraryService,
	logger *logger.Logger,
) ClientWeatherService {
	return &clientWeatherService{
		weatherAPI:  weatherAPI,
		weatherRepo: weatherRepo,
		schedule:    schedule,
		itinerary:   itinerary,
		logger:      logger,
	}
}

// Get implements ClientWeatherService.
//
// One live fetch is always attempted; success stamps the snapshot and
// overwrites the cache regardless of the previous snapshot's age. On
// failure the most recent cached snapshot of any age is the answer, and
// a location with neither yields (nil, nil) rather than an error so the
// UI can simply show nothing.
func (s *clientWeatherService) Get(ctx context.Context, location string) (*models.WeatherData, error) {
	log := logger.FromContext(ctx)

	fresh, err := s.weatherAPI.Fetch(ctx, location)
	if err == nil {
		fresh.LastUpdated = time.Now()
		if saveErr := s.weatherRepo.SaveSnapshot(ctx, location, fresh); saveErr != nil {
			// A failed cache write must not hide a successful fetch.
			log.Err(saveErr).Str("func", "clientWeatherService.Get").
				Str("location", location).Msg("error caching weather snapshot")
		}
		return &fresh, nil
	}

	log.Warn().Err(err).Str("func", "clientWeatherService.Get").
		Str("location", location).Msg("live weather fetch failed, falling back to cache")

	cached, cacheErr := s.weatherRepo.GetSnapshot(ctx, location)
	switch {
	case errors.Is(cacheErr, store.ErrWeatherNotCached):
		return nil, nil
	case cacheErr != nil:
		log.Err(cacheErr).Str("func", "clientWeatherService.Get").Msg("error reading cached weather")
		return nil, fmt.Errorf("error reading cached weather: %w", cacheErr)
	}

	return &cached, nil
}

// GetFresh implements ClientWeatherService. It never touches the network
// and answers only from a snapshot still inside the freshness window.
func (s *clientWeatherService) GetFresh(ctx context.Context, location string) (*models.WeatherData, error) {
	log := logger.FromContext(ctx)

	cached, err := s.weatherRepo.GetSnapshot(ctx, location)
	switch {
	case errors.Is(err, store.ErrWeatherNotCached):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "clientWeatherService.GetFresh").Msg("error reading cached weather")
		return nil, fmt.Errorf("error reading cached weather: %w", err)
	}

	if !cached.IsFresh(time.Now()) {
		return nil, nil
	}

	return &cached, nil
}

// RefreshAll implements ClientWeatherService. Locations are inferred from
// the current itinerary (falling back to all locations the API serves when
// none can be inferred), fetched concurrently, and every obtained snapshot
// is written back into the matching days' tips. Individual failures leave
// a location out of the result instead of failing the whole refresh.
func (s *clientWeatherService) RefreshAll(ctx context.Context) (map[string]*models.WeatherData, error) {
	log := logger.FromContext(ctx)

	days, err := s.schedule.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientWeatherService.RefreshAll").Msg("error loading itinerary")
		return nil, fmt.Errorf("error loading itinerary: %w", err)
	}

	locations := make(map[string]struct{})
	for _, day := range days {
		if loc, ok := inferLocation(day); ok {
			locations[loc] = struct{}{}
		}
	}

	// An itinerary with no inferable locations still gets a warm cache:
	// fall back to every location the API knows.
	if len(locations) == 0 {
		for _, loc := range s.weatherAPI.Locations() {
			locations[loc] = struct{}{}
		}
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		snapshots = make(map[string]*models.WeatherData, len(locations))
	)

	for location := range locations {
		wg.Add(1)
		go func(location string) {
			defer wg.Done()

			data, err := s.Get(ctx, location)
			if err != nil || data == nil {
				return
			}

			mu.Lock()
			snapshots[location] = data
			mu.Unlock()
		}(location)
	}
	wg.Wait()

	for location, data := range snapshots {
		if err := s.itinerary.ApplyWeather(ctx, location, *data); err != nil {
			log.Err(err).Str("func", "clientWeatherService.RefreshAll").
				Str("location", location).Msg("error writing weather back into itinerary")
			return snapshots, fmt.Errorf("error writing weather back into itinerary: %w", err)
		}
	}

	return snapshots, nil
}
