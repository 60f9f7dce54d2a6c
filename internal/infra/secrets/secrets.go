package secrets

import (
	"os"
	"path/filepath"

	"go-weather/internal/domain/model"
	"go-weather/pkg/resource"
)

const (
	// FileName is the conventional name of the credential file, looked up beside the executable
	FileName   = "secrets.ini"
	Section    = "openweather"
	APIKeyName = Section + ".api_key"
)

// DefaultPath returns the secrets file path beside the running executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// LoadAPIKey reads the OpenWeatherMap API key from an INI file shaped like
//
//	[openweather]
//	api_key=<YOUR-OPENWEATHER-API-KEY>
//
// A missing file, section or key is reported as a *model.ConfigError.
func LoadAPIKey(path string) (string, error) {
	props, err := resource.Load(path)
	if err != nil {
		return "", &model.ConfigError{Key: APIKeyName, Err: err}
	}
	if !props.HasSection(Section) {
		return "", &model.ConfigError{Key: Section}
	}
	if !props.IsSet(APIKeyName) {
		return "", &model.ConfigError{Key: APIKeyName}
	}

	apiKey := props.GetString(APIKeyName)
	if apiKey == "" {
		return "", &model.ConfigError{Key: APIKeyName}
	}
	return apiKey, nil
}
