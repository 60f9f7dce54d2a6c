package external

import "encoding/json"

// CurrentWeatherResponse represents the response from the OpenWeatherMap current weather API.
// Required fields are pointers so an absent field can be told apart from a zero value.
type CurrentWeatherResponse struct {
	Name    *string               `json:"name"`
	Weather []WeatherConditionDTO `json:"weather"`
	Main    *MainDTO              `json:"main"`
}

// WeatherConditionDTO represents a single weather condition
type WeatherConditionDTO struct {
	ID          *int    `json:"id"`
	Main        string  `json:"main"`
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
}

// MainDTO holds the main measurements block
type MainDTO struct {
	Temp      *float64 `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	Humidity  int      `json:"humidity"`
}

// APIErrorResponse represents error responses from OpenWeatherMap.
// cod is a number on some endpoints and a string on others.
type APIErrorResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}
