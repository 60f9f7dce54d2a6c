package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parisBody = `{"name":"Paris","weather":[{"id":800,"description":"clear sky"}],"main":{"temp":21.5}}`

type run struct {
	code   int
	stdout string
	stderr string
}

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func weatherServer(t *testing.T, status int, body string, hits *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func runCLI(t *testing.T, baseURL string, argv ...string) run {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(Options{Stdout: &stdout, Stderr: &stderr, BaseURL: baseURL})
	code := c.Run(context.Background(), argv)
	return run{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRunPrintsWeather(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(parisBody))
	}))
	defer server.Close()
	secretsPath := writeSecrets(t, "[openweather]\napi_key=KEY123\n")

	got := runCLI(t, server.URL, "-c", secretsPath, "--color=never", "New", "York")

	require.Equal(t, ExitOK, got.code, got.stderr)
	assert.Equal(t, "q=New+York&units=metric&appid=KEY123", query)
	assert.Equal(t, "       Paris        \t☀️      Clear sky       (21.5°C)\n", got.stdout)
	assert.Empty(t, got.stderr)
}

func TestRunImperialFlags(t *testing.T) {
	secretsPath := writeSecrets(t, "[openweather]\napi_key=KEY123\n")

	for _, flag := range []string{"-i", "--imperial", "-f", "--fahrenheit"} {
		t.Run(flag, func(t *testing.T) {
			var units string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				units = r.URL.Query().Get("units")
				_, _ = w.Write([]byte(parisBody))
			}))
			defer server.Close()

			got := runCLI(t, server.URL, "-c", secretsPath, flag, "Paris")

			require.Equal(t, ExitOK, got.code, got.stderr)
			assert.Equal(t, "imperial", units)
			assert.Contains(t, got.stdout, "(21.5°F)")
		})
	}
}

func TestRunColorAlways(t *testing.T) {
	server := weatherServer(t, http.StatusOK, parisBody, nil)
	secretsPath := writeSecrets(t, "[openweather]\napi_key=KEY123\n")

	got := runCLI(t, server.URL, "-c", secretsPath, "--color=always", "Paris")

	require.Equal(t, ExitOK, got.code, got.stderr)
	assert.Contains(t, got.stdout, "\033[;7m")
	assert.Contains(t, got.stdout, "\033[33m")
}

func TestRunAutoColorOffWithoutTerminal(t *testing.T) {
	server := weatherServer(t, http.StatusOK, parisBody, nil)
	secretsPath := writeSecrets(t, "[openweather]\napi_key=KEY123\n")

	got := runCLI(t, server.URL, "-c", secretsPath, "Paris")

	require.Equal(t, ExitOK, got.code, got.stderr)
	assert.NotContains(t, got.stdout, "\033")
}

func TestRunWithoutArgumentsPrintsHelp(t *testing.T) {
	got := runCLI(t, "http://127.0.0.1:1")

	assert.Equal(t, ExitOK, got.code)
	assert.Contains(t, got.stdout, "Usage: weather")
	assert.Contains(t, got.stdout, "--imperial")
	assert.Empty(t, got.stderr)
}

func TestRunUnknownFlag(t *testing.T) {
	got := runCLI(t, "http://127.0.0.1:1", "--bogus", "Paris")

	assert.Equal(t, ExitUsage, got.code)
	assert.NotEmpty(t, got.stderr)
	assert.Empty(t, got.stdout)
}

func TestRunErrors(t *testing.T) {
	validSecrets := "[openweather]\napi_key=KEY123\n"

	tests := []struct {
		name       string
		secrets    string
		status     int
		body       string
		wantCode   int
		wantStderr string
		wantHits   int
	}{
		{
			name:       "missing key",
			secrets:    "[openweather]\n",
			wantCode:   ExitConfig,
			wantStderr: "Couldn't read the API key for openweather.api_key.",
		},
		{
			name:       "missing section",
			secrets:    "[other]\napi_key=KEY123\n",
			wantCode:   ExitConfig,
			wantStderr: "Couldn't read the API key for openweather.",
		},
		{
			name:       "unauthorized",
			secrets:    validSecrets,
			status:     http.StatusUnauthorized,
			body:       `{"cod":401,"message":"Invalid API key."}`,
			wantCode:   ExitAuth,
			wantStderr: "Access denied. Check your API key.\n",
			wantHits:   1,
		},
		{
			name:       "not found",
			secrets:    validSecrets,
			status:     http.StatusNotFound,
			body:       `{"cod":"404","message":"city not found"}`,
			wantCode:   ExitNotFound,
			wantStderr: "Can't find weather data for this city.\n",
			wantHits:   1,
		},
		{
			name:       "server error",
			secrets:    validSecrets,
			status:     http.StatusInternalServerError,
			body:       `{}`,
			wantCode:   ExitTransport,
			wantStderr: "Something went wrong... (500)\n",
			wantHits:   1,
		},
		{
			name:       "malformed body",
			secrets:    validSecrets,
			status:     http.StatusOK,
			body:       `{"name":`,
			wantCode:   ExitDecode,
			wantStderr: "Couldn't read the server response.\n",
			wantHits:   1,
		},
		{
			name:       "missing temperature",
			secrets:    validSecrets,
			status:     http.StatusOK,
			body:       `{"name":"Paris","weather":[{"id":800,"description":"clear sky"}],"main":{}}`,
			wantCode:   ExitDecode,
			wantStderr: "Couldn't read the server response.\n",
			wantHits:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := 0
			server := weatherServer(t, tt.status, tt.body, &hits)
			secretsPath := writeSecrets(t, tt.secrets)

			got := runCLI(t, server.URL, "-c", secretsPath, "Paris")

			assert.Equal(t, tt.wantCode, got.code)
			assert.Contains(t, got.stderr, tt.wantStderr)
			assert.Empty(t, got.stdout)
			assert.Equal(t, tt.wantHits, hits)
		})
	}
}

func TestRunMissingSecretsFile(t *testing.T) {
	hits := 0
	server := weatherServer(t, http.StatusOK, parisBody, &hits)
	missing := filepath.Join(t.TempDir(), "secrets.ini")

	got := runCLI(t, server.URL, "-c", missing, "Paris")

	assert.Equal(t, ExitConfig, got.code)
	assert.Contains(t, got.stderr, missing)
	assert.Zero(t, hits)
}

func TestRunTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()
	secretsPath := writeSecrets(t, "[openweather]\napi_key=KEY123\n")

	got := runCLI(t, url, "-c", secretsPath, "Paris")

	assert.Equal(t, ExitTransport, got.code)
	assert.Contains(t, got.stderr, "Couldn't reach the weather service")
	assert.Empty(t, got.stdout)
}

func TestRunInterrupted(t *testing.T) {
	server := weatherServer(t, http.StatusOK, parisBody, nil)
	secretsPath := writeSecrets(t, "[openweather]\napi_key=KEY123\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := New(Options{Stdout: &stdout, Stderr: &stderr, BaseURL: server.URL}).Run(ctx, []string{"-c", secretsPath, "Paris"})

	assert.Equal(t, ExitInterrupted, code)
	assert.Equal(t, "Interrupted.\n", stderr.String())
	assert.Empty(t, stdout.String())
}
