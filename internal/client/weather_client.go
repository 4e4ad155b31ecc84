package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"

	"golang.org/x/time/rate"

	"github.com/fakhrymubarak/weather-fetcher/internal/config"
)

// ErrAPIKeyMissing is returned before any request goes out when no provider
// credential is configured.
var ErrAPIKeyMissing = errors.New("API key missing")

// ProviderError is a non-200 answer from the provider. Status code and body
// text are both kept for the user-facing message.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Body)
}

// NetworkError wraps a transport-level failure (connection refused, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// WeatherClient fetches current conditions for a city from the provider.
type WeatherClient interface {
	Fetch(ctx context.Context, city string) ([]byte, error)
}

type weatherClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiURL     string
}

// NewWeatherClient creates a provider client. The limiter keeps outbound
// traffic inside the provider's request quota.
func NewWeatherClient(httpClient ...*http.Client) WeatherClient {
	c := &http.Client{Timeout: config.GetHTTPTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		c = httpClient[0]
	}
	perMinute, burst := config.GetProviderRateLimit()
	return &weatherClient{
		httpClient: c,
		limiter:    rate.NewLimiter(rate.Limit(perMinute/60.0), burst),
		apiURL:     config.GetOpenWeatherApiUrl(),
	}
}

// Fetch performs a single GET against the provider and returns the raw JSON
// payload. One attempt only; a failed call is surfaced immediately.
func (c *weatherClient) Fetch(ctx context.Context, city string) ([]byte, error) {
	apiKey := config.GetOpenWeatherMapAPIKey()
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?q=%s&appid=%s&units=metric", c.apiURL, neturl.QueryEscape(city), apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
