package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// fakeWeatherJob records Start/Stop calls.
type fakeWeatherJob struct {
	started  atomic.Int32
	stopped  atomic.Int32
	interval atomic.Int64
}

func (f *fakeWeatherJob) Start(_ context.Context, interval time.Duration) {
	f.started.Add(1)
	f.interval.Store(int64(interval))
}

func (f *fakeWeatherJob) Stop() {
	f.stopped.Add(1)
}

func TestWeatherRefreshWorker_Run_StartsJobWithInterval(t *testing.T) {
	job := &fakeWeatherJob{}
	w := NewWeatherRefreshWorker(job, 15*time.Minute)

	w.Run()

	if got := job.started.Load(); got != 1 {
		t.Errorf("expected Start to be called once, got %d", got)
	}
	if got := time.Duration(job.interval.Load()); got != 15*time.Minute {
		t.Errorf("expected interval 15m, got %v", got)
	}
}

func TestWeatherRefreshWorker_Stop_StopsJob(t *testing.T) {
	job := &fakeWeatherJob{}
	w := NewWeatherRefreshWorker(job, time.Minute)

	w.Run()
	w.Stop()

	if got := job.stopped.Load(); got != 1 {
		t.Errorf("expected Stop to be called once, got %d", got)
	}
}

func TestNewWorkers_RunsProvidedWorkers(t *testing.T) {
	job := &fakeWeatherJob{}
	ws := NewWorkers(NewWeatherRefreshWorker(job, time.Minute))

	ws.Run()

	if got := job.started.Load(); got != 1 {
		t.Errorf("expected the weather job to be started, got %d starts", got)
	}
}
