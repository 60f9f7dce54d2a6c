package entity

// UnitSystem selects the measurement system the provider reports temperatures in.
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

// Param returns the value of the provider's units query parameter.
func (u UnitSystem) Param() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Symbol returns the temperature suffix for the unit system.
func (u UnitSystem) Symbol() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// WeatherQuery holds everything needed to ask the provider for the current weather of a city
type WeatherQuery struct {
	CityTokens []string
	Units      UnitSystem
	APIKey     string
}

// WeatherResult is the decoded current weather of a city
type WeatherResult struct {
	CityName             string
	ConditionCode        int
	ConditionDescription string
	Temperature          float64
}
