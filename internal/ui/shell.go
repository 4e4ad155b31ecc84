package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fakhrymubarak/weather-fetcher/internal/model"
	"github.com/fakhrymubarak/weather-fetcher/internal/worker"
)

// RenderWeather formats the three-field summary shown after a successful
// fetch.
func RenderWeather(w *model.WeatherResult) string {
	return fmt.Sprintf("Weather: %s\nTemperature: %v°C\nHumidity: %d%%",
		w.Description, w.Temperature, w.Humidity)
}

// Shell is the interactive surface: prompt for a city, hand it to the
// foreground worker, render the reply. All output goes through the shell's
// own loop; worker goroutines never write here directly.
type Shell struct {
	in     io.Reader
	out    io.Writer
	worker *worker.ForegroundWorker
}

func NewShell(in io.Reader, out io.Writer, w *worker.ForegroundWorker) *Shell {
	return &Shell{in: in, out: out, worker: w}
}

// Run drives the prompt loop until input hits EOF or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "Enter city name: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		city := strings.TrimSpace(scanner.Text())
		if city == "" {
			fmt.Fprintln(s.out, "Please enter a city name.")
			continue
		}

		if err := s.worker.Trigger(ctx, city); err != nil {
			if errors.Is(err, worker.ErrFetchInFlight) {
				fmt.Fprintln(s.out, "A fetch is already in progress.")
			} else {
				fmt.Fprintf(s.out, "Error: %v\n", err)
			}
			continue
		}
		fmt.Fprintln(s.out, "Fetching weather...")

		select {
		case res := <-s.worker.Results():
			if res.Err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", res.Err)
			} else {
				fmt.Fprintln(s.out, RenderWeather(res.Weather))
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
