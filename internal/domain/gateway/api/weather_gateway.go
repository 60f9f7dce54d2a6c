package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// FetchCurrentWeather performs a single GET on a fully built query URL and decodes the current weather.
	// Errors are one of model.ErrUnauthorized, model.ErrLocationNotFound, *model.TransportError or *model.DecodeError
	FetchCurrentWeather(ctx context.Context, url string) (*entity.WeatherResult, error)
}
