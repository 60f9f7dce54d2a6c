package http

import (
	"net/url"

	"go-weather/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called when the request fails or the response has an error HTTP status
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {}

// ZapLogger logs HTTP traffic at debug level through the application zap logger.
// Query parameters named in RedactParams are masked in logged URLs.
type ZapLogger struct {
	RedactParams []string
}

func (l ZapLogger) LogRequest(method, url string, headers map[string]string) {
	log.Debug("http request",
		zap.String("method", method),
		zap.String("url", RedactQuery(url, l.RedactParams...)),
		zap.Any("headers", headers))
}

func (l ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64) {
	log.Debug("http response",
		zap.String("method", method),
		zap.String("url", RedactQuery(url, l.RedactParams...)),
		zap.String("requestId", headers["X-Request-Id"]),
		zap.Int("status", httpStatus),
		zap.Int64("latencyMs", latency),
		zap.String("body", responseBody))
}

func (l ZapLogger) LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Debug("http response error",
		zap.String("method", method),
		zap.String("url", RedactQuery(url, l.RedactParams...)),
		zap.String("requestId", headers["X-Request-Id"]),
		zap.Int("status", httpStatus),
		zap.Int64("latencyMs", latency),
		zap.String("body", responseBody),
		zap.Error(err))
}

// RedactQuery replaces the values of the given query parameters with a mask.
// Unparseable URLs are returned unchanged.
func RedactQuery(rawURL string, params ...string) string {
	if len(params) == 0 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := u.Query()
	changed := false
	for _, p := range params {
		if query.Has(p) {
			query.Set(p, "redacted")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	u.RawQuery = query.Encode()
	return u.String()
}
