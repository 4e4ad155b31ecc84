package worker

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fakhrymubarak/weather-fetcher/internal/model"
	"github.com/fakhrymubarak/weather-fetcher/internal/service"
)

// ErrFetchInFlight rejects a trigger while a previous fetch is still pending.
var ErrFetchInFlight = errors.New("a fetch is already in progress")

// Result is what a finished fetch delivers back to the UI loop. Exactly one
// Result arrives per accepted trigger.
type Result struct {
	City    string
	Weather *model.WeatherResult
	Err     error
}

// ForegroundWorker runs one user-initiated fetch at a time off the UI loop.
// The UI never gets touched from the fetch goroutine; it reads Results
// from its own loop instead.
type ForegroundWorker struct {
	service  service.WeatherService
	results  chan Result
	inFlight atomic.Bool
}

func NewForegroundWorker(svc service.WeatherService) *ForegroundWorker {
	return &ForegroundWorker{
		service: svc,
		results: make(chan Result, 1),
	}
}

// Results delivers the outcome of each accepted trigger.
func (w *ForegroundWorker) Results() <-chan Result {
	return w.results
}

// InFlight reports whether a fetch is currently pending.
func (w *ForegroundWorker) InFlight() bool {
	return w.inFlight.Load()
}

// Trigger starts a background fetch for city. Empty input and overlapping
// requests are rejected synchronously, before anything is spawned.
func (w *ForegroundWorker) Trigger(ctx context.Context, city string) error {
	if strings.TrimSpace(city) == "" {
		return service.ErrEmptyCity
	}
	if !w.inFlight.CompareAndSwap(false, true) {
		return ErrFetchInFlight
	}

	go func() {
		weather, err := w.service.GetWeather(ctx, city)
		// Clear the flag before delivering: a reader that consumes the
		// result must be able to trigger the next fetch immediately.
		w.inFlight.Store(false)
		select {
		case w.results <- Result{City: city, Weather: weather, Err: err}:
		case <-ctx.Done():
		}
	}()
	return nil
}
