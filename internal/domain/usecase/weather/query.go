package weather

import (
	"fmt"
	"net/url"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// DefaultBaseURL is OpenWeatherMap's current weather endpoint
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

const apiKeyName = "openweather.api_key"

// NewQuery builds a WeatherQuery, failing with a *model.ConfigError when the API key is empty
func NewQuery(cityTokens []string, units entity.UnitSystem, apiKey string) (entity.WeatherQuery, error) {
	if apiKey == "" {
		return entity.WeatherQuery{}, &model.ConfigError{Key: apiKeyName}
	}

	tokens := make([]string, len(cityTokens))
	copy(tokens, cityTokens)

	return entity.WeatherQuery{CityTokens: tokens, Units: units, APIKey: apiKey}, nil
}

// CityName joins the city tokens with single spaces.
func CityName(query entity.WeatherQuery) string {
	return strings.Join(query.CityTokens, " ")
}

// BuildQueryURL returns the request URL for the query.
// The city is form-encoded, so spaces become '+'.
func BuildQueryURL(baseURL string, query entity.WeatherQuery) (string, error) {
	if query.APIKey == "" {
		return "", &model.ConfigError{Key: apiKeyName}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return fmt.Sprintf("%s?q=%s&units=%s&appid=%s",
		baseURL,
		url.QueryEscape(CityName(query)),
		query.Units.Param(),
		url.QueryEscape(query.APIKey),
	), nil
}
