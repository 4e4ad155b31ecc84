package model

import "encoding/json"

// WeatherResult is the projection shown to the user: three fields out of the
// provider's full payload.
type WeatherResult struct {
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Cached      bool    `json:"cached"`
}

// ParseWeather projects a raw provider payload into a WeatherResult. A payload
// with no weather entries yields an empty description, not an error.
func ParseWeather(payload []byte) (*WeatherResult, error) {
	var data OpenWeatherMapResponse
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, err
	}

	result := &WeatherResult{
		Temperature: data.Main.Temp,
		Humidity:    data.Main.Humidity,
	}
	if len(data.Weather) > 0 {
		result.Description = data.Weather[0].Description
	}
	return result, nil
}
