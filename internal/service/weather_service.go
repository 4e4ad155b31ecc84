package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fakhrymubarak/weather-fetcher/internal/cache"
	"github.com/fakhrymubarak/weather-fetcher/internal/client"
	"github.com/fakhrymubarak/weather-fetcher/internal/model"
)

// ErrEmptyCity rejects blank queries before any network activity.
var ErrEmptyCity = errors.New("city name is empty")

// WeatherService answers city lookups, cache first, provider second.
type WeatherService interface {
	// GetWeather returns the three-field projection for a city. Cached
	// reports whether the answer came from the cache.
	GetWeather(ctx context.Context, city string) (*model.WeatherResult, error)

	// GetWeatherPayload returns the raw provider payload for a city. The
	// periodic worker prints this verbatim.
	GetWeatherPayload(ctx context.Context, city string) ([]byte, error)
}

type weatherService struct {
	cache  cache.Cache
	client client.WeatherClient
}

func NewWeatherService(c cache.Cache, wc client.WeatherClient) WeatherService {
	return &weatherService{cache: c, client: wc}
}

func (s *weatherService) GetWeather(ctx context.Context, city string) (*model.WeatherResult, error) {
	payload, cached, err := s.payload(ctx, city)
	if err != nil {
		return nil, err
	}
	result, err := model.ParseWeather(payload)
	if err != nil {
		return nil, err
	}
	result.Cached = cached
	return result, nil
}

func (s *weatherService) GetWeatherPayload(ctx context.Context, city string) ([]byte, error) {
	payload, _, err := s.payload(ctx, city)
	return payload, err
}

func (s *weatherService) payload(ctx context.Context, city string) ([]byte, bool, error) {
	if strings.TrimSpace(city) == "" {
		return nil, false, ErrEmptyCity
	}

	if payload, ok := s.cache.Get(ctx, city); ok {
		return payload, true, nil
	}

	payload, err := s.client.Fetch(ctx, city)
	if err != nil {
		return nil, false, err
	}
	s.cache.Set(ctx, city, payload)
	return payload, false, nil
}
