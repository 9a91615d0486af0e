// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-trip-keeper/internal/adapter"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/seed"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
	"github.com/MKhiriev/go-trip-keeper/models"
	"github.com/google/uuid"
)

type clientItineraryService struct {
	scheduleRepo store.ScheduleRepository
	metaRepo     store.MetaRepository
	relay        adapter.RelayAdapter
	reconciler   ReconcileService

	logger *logger.Logger
}

// NewClientItineraryService constructs the itinerary service. The relay
// adapter is only consulted as a connectivity probe during Load; itinerary
// data itself never leaves the device.
func NewClientItineraryService(
	scheduleRepo store.ScheduleRepository,
	metaRepo store.MetaRepository,
	relay adapter.RelayAdapter,
	reconciler ReconcileService,
	logger *logger.Logger,
) ClientItineraryService {
	return &clientItineraryService{
		scheduleRepo: scheduleRepo,
		metaRepo:     metaRepo,
		relay:        relay,
		reconciler:   reconciler,
		logger:       logger,
	}
}

// Load implements ClientItineraryService.
//
// Seed policy, in order:
//  1. empty storage → write the built-in itinerary and its version, return it;
//  2. relay unreachable → return saved state verbatim, merge deferred until
//     the next online load;
//  3. stored seed version equals the built-in one → return saved state;
//  4. version differs → merge, persist the result and the new version.
func (s *clientItineraryService) Load(ctx context.Context) ([]models.DailySchedule, error) {
	log := logger.FromContext(ctx)

	savedDays, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientItineraryService.Load").Msg("error loading saved itinerary")
		return nil, fmt.Errorf("error loading saved itinerary: %w", err)
	}

	if len(savedDays) == 0 {
		seedDays := seed.Itinerary()
		if err := s.persist(ctx, seedDays); err != nil {
			return nil, err
		}
		return seedDays, nil
	}

	if !s.relay.Alive(ctx) {
		log.Debug().Str("func", "clientItineraryService.Load").Msg("relay unreachable, using saved itinerary as-is")
		return savedDays, nil
	}

	storedVersion := 0
	rawVersion, err := s.metaRepo.GetValue(ctx, seed.MetaKeySeedVersion)
	switch {
	case errors.Is(err, store.ErrMetaKeyNotFound):
		// Pre-versioning storage: treat as version 0 and merge below.
	case err != nil:
		log.Err(err).Str("func", "clientItineraryService.Load").Msg("error reading stored seed version")
		return nil, fmt.Errorf("error reading stored seed version: %w", err)
	default:
		if storedVersion, err = strconv.Atoi(rawVersion); err != nil {
			log.Warn().Str("func", "clientItineraryService.Load").
				Str("value", rawVersion).Msg("malformed stored seed version, forcing merge")
			storedVersion = 0
		}
	}

	if storedVersion == seed.Version {
		return savedDays, nil
	}

	merged, err := s.reconciler.BuildMergedItinerary(ctx, seed.Itinerary(), savedDays, seed.RemovedItemIDs)
	if err != nil {
		log.Err(err).Str("func", "clientItineraryService.Load").Msg("error merging itinerary with new seed revision")
		return nil, fmt.Errorf("error merging itinerary with new seed revision: %w", err)
	}

	if err := s.persist(ctx, merged); err != nil {
		return nil, err
	}

	log.Info().Str("func", "clientItineraryService.Load").
		Int("from_version", storedVersion).
		Int("to_version", seed.Version).
		Msg("itinerary migrated to new seed revision")

	return merged, nil
}

// persist writes the full day list and stamps the built-in seed version.
func (s *clientItineraryService) persist(ctx context.Context, days []models.DailySchedule) error {
	log := logger.FromContext(ctx)

	if err := s.scheduleRepo.ReplaceAll(ctx, days); err != nil {
		log.Err(err).Str("func", "clientItineraryService.persist").Msg("error persisting itinerary")
		return fmt.Errorf("error persisting itinerary: %w", err)
	}
	if err := s.metaRepo.SetValue(ctx, seed.MetaKeySeedVersion, strconv.Itoa(seed.Version)); err != nil {
		log.Err(err).Str("func", "clientItineraryService.persist").Msg("error storing seed version")
		return fmt.Errorf("error storing seed version: %w", err)
	}

	return nil
}

// AddItem implements ClientItineraryService.
func (s *clientItineraryService) AddItem(ctx context.Context, item models.ItineraryItem) ([]models.DailySchedule, error) {
	log := logger.FromContext(ctx)

	if item.Date == "" || item.Title == "" {
		return nil, ErrInvalidDataProvided
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	day, err := s.scheduleRepo.GetDay(ctx, item.Date)
	switch {
	case errors.Is(err, store.ErrDayNotFound):
		day = models.DailySchedule{Date: item.Date, Title: item.Date}
	case err != nil:
		log.Err(err).Str("func", "clientItineraryService.AddItem").Msg("error loading day")
		return nil, fmt.Errorf("error loading day: %w", err)
	}

	day.Items = append(day.Items, item)

	return s.saveDayAndReload(ctx, day, "clientItineraryService.AddItem")
}

// UpdateItem implements ClientItineraryService. Only the patch fields that
// are set overwrite the stored item; a field set to an empty string clears
// the stored value.
func (s *clientItineraryService) UpdateItem(ctx context.Context, date, itemID string, patch models.ItineraryItemPatch) ([]models.DailySchedule, error) {
	log := logger.FromContext(ctx)

	day, err := s.scheduleRepo.GetDay(ctx, date)
	switch {
	case errors.Is(err, store.ErrDayNotFound):
		return nil, ErrDayNotFound
	case err != nil:
		log.Err(err).Str("func", "clientItineraryService.UpdateItem").Msg("error loading day")
		return nil, fmt.Errorf("error loading day: %w", err)
	}

	idx := indexOfItem(day, itemID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	item := &day.Items[idx]
	if patch.Time != nil {
		item.Time = *patch.Time
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}

	return s.saveDayAndReload(ctx, day, "clientItineraryService.UpdateItem")
}

// DeleteItem implements ClientItineraryService.
func (s *clientItineraryService) DeleteItem(ctx context.Context, date, itemID string) ([]models.DailySchedule, error) {
	log := logger.FromContext(ctx)

	day, err := s.scheduleRepo.GetDay(ctx, date)
	switch {
	case errors.Is(err, store.ErrDayNotFound):
		return nil, ErrDayNotFound
	case err != nil:
		log.Err(err).Str("func", "clientItineraryService.DeleteItem").Msg("error loading day")
		return nil, fmt.Errorf("error loading day: %w", err)
	}

	idx := indexOfItem(day, itemID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	day.Items = append(day.Items[:idx], day.Items[idx+1:]...)

	return s.saveDayAndReload(ctx, day, "clientItineraryService.DeleteItem")
}

// ApplyWeather implements ClientItineraryService. Only days that already
// carry a tips block and whose inferred location matches are rewritten, and
// only when the reading actually changed; item lists and order are never
// touched.
func (s *clientItineraryService) ApplyWeather(ctx context.Context, location string, data models.WeatherData) error {
	log := logger.FromContext(ctx)

	days, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientItineraryService.ApplyWeather").Msg("error loading itinerary")
		return fmt.Errorf("error loading itinerary: %w", err)
	}

	reading := data.DayWeather()
	for _, day := range days {
		if day.DailyTips == nil {
			continue
		}
		if loc, ok := inferLocation(day); !ok || loc != location {
			continue
		}
		if day.DailyTips.Weather == reading {
			continue
		}

		tips := *day.DailyTips
		tips.Weather = reading
		day.DailyTips = &tips

		if err := s.scheduleRepo.SaveDay(ctx, day); err != nil {
			log.Err(err).Str("func", "clientItineraryService.ApplyWeather").
				Str("date", day.Date).Msg("error saving day weather")
			return fmt.Errorf("error saving day weather: %w", err)
		}
	}

	return nil
}

// saveDayAndReload persists a mutated day and returns the full itinerary.
func (s *clientItineraryService) saveDayAndReload(ctx context.Context, day models.DailySchedule, caller string) ([]models.DailySchedule, error) {
	log := logger.FromContext(ctx)

	if err := s.scheduleRepo.SaveDay(ctx, day); err != nil {
		log.Err(err).Str("func", caller).Msg("error saving day")
		return nil, fmt.Errorf("error saving day: %w", err)
	}

	days, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error reloading itinerary")
		return nil, fmt.Errorf("error reloading itinerary: %w", err)
	}

	return days, nil
}

func indexOfItem(day models.DailySchedule, itemID string) int {
	for i, item := range day.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
