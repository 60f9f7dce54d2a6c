package configs

import (
	"github.com/spf13/viper"
)

const defaultWeatherAPIURL = "https://api.openweathermap.org/data/2.5/weather"

type EnvConfig struct {
	ApplicationName string
	LogLevel        string
	WeatherAPIURL   string
}

var Env *EnvConfig

func init() {
	Env = LoadEnv()
}

// LoadEnv reads the process environment into an EnvConfig.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "go-weather"),
		LogLevel:        getStringOrDefault(v, "LOG_LEVEL", "warn"),
		WeatherAPIURL:   getStringOrDefault(v, "OPENWEATHER_API_URL", defaultWeatherAPIURL),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
