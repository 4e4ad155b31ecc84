package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakhrymubarak/weather-fetcher/internal/model"
	"github.com/fakhrymubarak/weather-fetcher/internal/worker"
)

type fakeService struct {
	results map[string]*model.WeatherResult
	errs    map[string]error
	calls   int
}

func (s *fakeService) GetWeather(ctx context.Context, city string) (*model.WeatherResult, error) {
	s.calls++
	if err, ok := s.errs[city]; ok {
		return nil, err
	}
	if res, ok := s.results[city]; ok {
		return res, nil
	}
	return nil, errors.New("unexpected city " + city)
}

func (s *fakeService) GetWeatherPayload(ctx context.Context, city string) ([]byte, error) {
	return nil, errors.New("not used")
}

func TestRenderWeather(t *testing.T) {
	result, err := model.ParseWeather([]byte(`{"weather":[{"description":"clear sky"}],"main":{"temp":21.5,"humidity":40}}`))
	require.NoError(t, err)

	want := "Weather: clear sky\nTemperature: 21.5°C\nHumidity: 40%"
	assert.Equal(t, want, RenderWeather(result))
}

func TestRenderWeather_WholeDegrees(t *testing.T) {
	got := RenderWeather(&model.WeatherResult{Description: "mist", Temperature: -3, Humidity: 81})
	assert.Equal(t, "Weather: mist\nTemperature: -3°C\nHumidity: 81%", got)
}

func runShell(t *testing.T, svc *fakeService, input string) string {
	t.Helper()
	var out strings.Builder
	shell := NewShell(strings.NewReader(input), &out, worker.NewForegroundWorker(svc))
	require.NoError(t, shell.Run(context.Background()))
	return out.String()
}

func TestShell_SuccessfulLookup(t *testing.T) {
	svc := &fakeService{results: map[string]*model.WeatherResult{
		"London": {Description: "clear sky", Temperature: 21.5, Humidity: 40},
	}}

	out := runShell(t, svc, "London\n")
	assert.Contains(t, out, "Fetching weather...")
	assert.Contains(t, out, "Weather: clear sky\nTemperature: 21.5°C\nHumidity: 40%")
	assert.Equal(t, 1, svc.calls)
}

func TestShell_EmptyInput(t *testing.T) {
	svc := &fakeService{}

	out := runShell(t, svc, "\n   \n")
	assert.Equal(t, 2, strings.Count(out, "Please enter a city name."))
	assert.NotContains(t, out, "Fetching weather...")
	assert.Equal(t, 0, svc.calls, "empty input must never trigger a fetch")
}

func TestShell_FetchError(t *testing.T) {
	svc := &fakeService{errs: map[string]error{
		"Nowhere": errors.New("API error: 404 - city not found"),
	}}

	out := runShell(t, svc, "Nowhere\n")
	assert.Contains(t, out, "Error: API error: 404 - city not found")
}

func TestShell_ContinuesAfterError(t *testing.T) {
	svc := &fakeService{
		results: map[string]*model.WeatherResult{
			"London": {Description: "clear sky", Temperature: 21.5, Humidity: 40},
		},
		errs: map[string]error{
			"Nowhere": errors.New("API error: 404 - city not found"),
		},
	}

	out := runShell(t, svc, "Nowhere\nLondon\n")
	assert.Contains(t, out, "Error: API error: 404 - city not found")
	assert.Contains(t, out, "Weather: clear sky")
}

func TestShell_EOFEndsLoop(t *testing.T) {
	out := runShell(t, &fakeService{}, "")
	assert.Contains(t, out, "Enter city name: ")
}
