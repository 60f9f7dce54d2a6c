package weather

import (
	"context"

	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// CurrentWeather builds the request for the query and fetches the current weather
	CurrentWeather(ctx context.Context, query entity.WeatherQuery) (*entity.WeatherResult, error)
}
