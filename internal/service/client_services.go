package service

import (
	"github.com/MKhiriev/go-trip-keeper/internal/adapter"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/store"
)

// ClientServices aggregates all client-side services wired together.
type ClientServices struct {
	ItineraryService ClientItineraryService
	ScheduleView     ClientScheduleViewService
	BudgetService    ClientBudgetService
	JournalService   ClientJournalService
	WeatherService   ClientWeatherService
	WeatherJob       ClientWeatherJob
	AssistantService ClientAssistantService
}

func NewClientServices(
	storages *store.Storages,
	relay adapter.RelayAdapter,
	weatherAPI adapter.WeatherAPI,
	logger *logger.Logger,
) *ClientServices {
	itinerarySvc := NewClientItineraryService(
		storages.ScheduleRepository, storages.MetaRepository, relay, NewReconcileService(), logger)
	weatherSvc := NewClientWeatherService(
		weatherAPI, storages.WeatherRepository, storages.ScheduleRepository, itinerarySvc, logger)

	return &ClientServices{
		ItineraryService: itinerarySvc,
		ScheduleView:     NewClientScheduleViewService(),
		BudgetService:    NewClientBudgetService(storages.BudgetRepository, logger),
		JournalService:   NewClientJournalService(storages.JournalRepository, logger),
		WeatherService:   weatherSvc,
		WeatherJob:       NewClientWeatherJob(weatherSvc),
		AssistantService: NewClientAssistantService(relay, logger),
	}
}
