package worker

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/fakhrymubarak/weather-fetcher/internal/config"
	"github.com/fakhrymubarak/weather-fetcher/internal/service"
)

// PeriodicWorker re-fetches one configured city for the life of the process,
// writing each outcome to its writer. Fetch errors are reported and swallowed;
// only ctx cancellation stops the loop.
type PeriodicWorker struct {
	service  service.WeatherService
	city     string
	interval time.Duration
	out      io.Writer
	logger   *zap.SugaredLogger
}

func NewPeriodicWorker(svc service.WeatherService, city string, interval time.Duration, out io.Writer) *PeriodicWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PeriodicWorker{
		service:  svc,
		city:     city,
		interval: interval,
		out:      out,
		logger:   config.GetLogger(),
	}
}

// Run fetches, reports, sleeps, repeats. It returns once ctx is cancelled so
// the caller can join it during shutdown.
func (w *PeriodicWorker) Run(ctx context.Context) {
	for {
		payload, err := w.service.GetWeatherPayload(ctx, w.city)
		if ctx.Err() != nil {
			w.logger.Infow("periodic fetcher stopped", "city", w.city)
			return
		}
		if err != nil {
			fmt.Fprintf(w.out, "Periodic Fetch Error: %v\n", err)
		} else {
			fmt.Fprintf(w.out, "Periodic Weather Update: %s\n", payload)
		}

		select {
		case <-ctx.Done():
			w.logger.Infow("periodic fetcher stopped", "city", w.city)
			return
		case <-time.After(w.interval):
		}
	}
}
