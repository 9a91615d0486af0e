package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/service"
)

// WeatherRefreshWorker runs the periodic weather refresh job as a managed
// background worker.
type WeatherRefreshWorker struct {
	job      service.ClientWeatherJob
	interval time.Duration
}

func NewWeatherRefreshWorker(job service.ClientWeatherJob, interval time.Duration) *WeatherRefreshWorker {
	return &WeatherRefreshWorker{job: job, interval: interval}
}

func (w *WeatherRefreshWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}

// Stop halts the underlying job and waits for an in-flight refresh to finish.
func (w *WeatherRefreshWorker) Stop() {
	w.job.Stop()
}
