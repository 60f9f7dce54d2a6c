package weather

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/pkg/log"

	"go.uber.org/zap"
)

type weatherUseCase struct {
	baseURL    string
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(baseURL string, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		baseURL:    baseURL,
		apiGateway: apiGateway,
	}
}

// CurrentWeather builds the request for the query and fetches the current weather
func (uc *weatherUseCase) CurrentWeather(ctx context.Context, query entity.WeatherQuery) (*entity.WeatherResult, error) {
	url, err := BuildQueryURL(uc.baseURL, query)
	if err != nil {
		return nil, err
	}

	log.Debug("fetching current weather",
		zap.String("city", CityName(query)),
		zap.String("units", query.Units.Param()))

	result, err := uc.apiGateway.FetchCurrentWeather(ctx, url)
	if err != nil {
		return nil, err
	}

	log.Info("current weather fetched",
		zap.String("city", result.CityName),
		zap.Int("conditionCode", result.ConditionCode),
		zap.Stringer("category", entity.Classify(result.ConditionCode)))

	return result, nil
}
