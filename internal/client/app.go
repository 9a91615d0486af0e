package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
	"github.com/MKhiriev/go-trip-keeper/internal/service"
	"github.com/MKhiriev/go-trip-keeper/internal/tui"
	"github.com/MKhiriev/go-trip-keeper/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI

	weatherWorker *workers.WeatherRefreshWorker
	background    *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	weatherWorker := workers.NewWeatherRefreshWorker(services.WeatherJob, workersCfg.WeatherRefreshInterval)

	return &App{
		services:      services,
		ui:            ui,
		weatherWorker: weatherWorker,
		background:    workers.NewWorkers(weatherWorker),
		logger:        logger,
	}, nil
}

// Run drives the full client lifecycle: load the itinerary (seeding or
// reconciling as needed), pick the initially selected day, warm the weather
// cache, start the background refresh, then hand control to the UI.
func (a *App) Run() error {
	ctx := context.Background()

	days, err := a.services.ItineraryService.Load(ctx)
	if err != nil {
		return fmt.Errorf("load itinerary: %w", err)
	}

	dayIndex := a.services.ScheduleView.DefaultDayIndex(days, time.Now())

	// Initial weather warm-up happens off the UI path; the itinerary is
	// usable without it.
	go func() {
		if _, err := a.services.WeatherService.RefreshAll(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial weather refresh incomplete")
		}
	}()

	a.background.Run()
	defer a.weatherWorker.Stop()

	if err := a.ui.Run(ctx, days, dayIndex); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
