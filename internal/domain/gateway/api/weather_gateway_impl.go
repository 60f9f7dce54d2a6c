package api

import (
	"context"
	"errors"
	"net/http"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	httpclient "go-weather/pkg/http"

	"github.com/google/uuid"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *httpclient.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(clientOptions httpclient.ClientOptions) WeatherGateway {
	clientOptions.FollowRedirect = true

	return &weatherGatewayImpl{
		httpClient: httpclient.NewHttpClient(clientOptions),
	}
}

// FetchCurrentWeather gets the current weather from a query URL
func (w *weatherGatewayImpl) FetchCurrentWeather(ctx context.Context, url string) (*entity.WeatherResult, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(httpclient.GET).
		WithURL(url).
		WithHeaders(map[string]string{"X-Request-Id": uuid.NewString()}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return toWeatherResult(successResp.(*external.CurrentWeatherResponse))
	}

	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		switch status {
		case http.StatusUnauthorized:
			return nil, model.ErrUnauthorized
		case http.StatusNotFound:
			return nil, model.ErrLocationNotFound
		}

		transportErr := &model.TransportError{StatusCode: status}
		if errResp != nil {
			transportErr.Message = errResp.(*external.APIErrorResponse).Message
		}
		return nil, transportErr
	}

	var decodeErr *httpclient.DecodeError
	if errors.As(err, &decodeErr) {
		return nil, &model.DecodeError{Err: decodeErr.Err}
	}

	return nil, &model.TransportError{Err: err}
}

// toWeatherResult checks the fields the display needs are present.
// The provider schema is not guaranteed, so an absent field is a decode error rather than a zero value.
func toWeatherResult(resp *external.CurrentWeatherResponse) (*entity.WeatherResult, error) {
	switch {
	case resp.Name == nil:
		return nil, &model.DecodeError{Field: "name"}
	case len(resp.Weather) == 0:
		return nil, &model.DecodeError{Field: "weather"}
	case resp.Weather[0].ID == nil:
		return nil, &model.DecodeError{Field: "weather[0].id"}
	case resp.Weather[0].Description == nil:
		return nil, &model.DecodeError{Field: "weather[0].description"}
	case resp.Main == nil || resp.Main.Temp == nil:
		return nil, &model.DecodeError{Field: "main.temp"}
	}

	return &entity.WeatherResult{
		CityName:             *resp.Name,
		ConditionCode:        *resp.Weather[0].ID,
		ConditionDescription: *resp.Weather[0].Description,
		Temperature:          *resp.Main.Temp,
	}, nil
}
