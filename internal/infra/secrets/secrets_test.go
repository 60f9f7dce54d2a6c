package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"go-weather/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIKey(t *testing.T) {
	key, err := LoadAPIKey(writeSecrets(t, "[openweather]\napi_key=KEY123\n"))
	require.NoError(t, err)
	assert.Equal(t, "KEY123", key)
}

func TestLoadAPIKeyErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantKey string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), FileName) },
			wantKey: APIKeyName,
		},
		{
			name:    "missing section",
			path:    func(t *testing.T) string { return writeSecrets(t, "[other]\napi_key=KEY123\n") },
			wantKey: Section,
		},
		{
			name:    "missing key",
			path:    func(t *testing.T) string { return writeSecrets(t, "[openweather]\ntoken=KEY123\n") },
			wantKey: APIKeyName,
		},
		{
			name:    "empty key",
			path:    func(t *testing.T) string { return writeSecrets(t, "[openweather]\napi_key=\n") },
			wantKey: APIKeyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAPIKey(tt.path(t))

			var configErr *model.ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.wantKey, configErr.Key)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, FileName, filepath.Base(DefaultPath()))
}
