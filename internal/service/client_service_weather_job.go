package service

import (
	"context"
	"sync"
	"time"
)

type clientWeatherJob struct {
	weatherService ClientWeatherService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientWeatherJob creates a clientWeatherJob that calls
// weatherService.RefreshAll on a ticker. The job is idle until Start is
// called.
func NewClientWeatherJob(weatherService ClientWeatherService) ClientWeatherJob {
	return &clientWeatherJob{weatherService: weatherService}
}

// Start implements ClientWeatherJob. It stops any previously running job,
// then launches a background goroutine that refreshes all weather snapshots
// every interval. If interval is zero or negative it defaults to 30 minutes.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientWeatherJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.weatherService.RefreshAll(jobCtx)
			}
		}
	}()
}

// Stop implements ClientWeatherJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientWeatherJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
