package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	client             *http.Client
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect     bool
	DefaultHeaders     map[string]string
	DefaultContentType string
	// Timeout is the whole-request timeout. Zero leaves the request bounded only by its context.
	Timeout   time.Duration
	Transport http.RoundTripper
	Logger    HTTPLogger
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// DecodeError is returned when a 2xx response body cannot be unmarshalled into the success response.
type DecodeError struct {
	ContentType string
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to unmarshal %s response: %v", e.ContentType, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewHttpClient creates a new HTTP client with the given configuration options.
func NewHttpClient(opts ClientOptions) *Client {
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}
	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	client := &http.Client{
		Transport: opts.Transport,
		Timeout:   opts.Timeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		client:             client,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest sends a body-less request, reads the whole response and unmarshals it into
// successResp for 2xx statuses or into errorResp otherwise.
func (hc *Client) doRequest(ctx context.Context, method, url string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, nil, 0, err
	}

	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	requestHeaders := flattenHeaders(req.Header)

	hc.logger.LogRequest(method, url, requestHeaders)
	start := time.Now()

	resp, err := hc.client.Do(req)
	if err != nil {
		hc.logger.LogResponseError(method, url, requestHeaders, 0, "", time.Since(start).Milliseconds(), err)
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		hc.logger.LogResponseError(method, url, requestHeaders, resp.StatusCode, "", time.Since(start).Milliseconds(), err)
		return nil, nil, resp.StatusCode, err
	}
	latency := time.Since(start).Milliseconds()

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		hc.logger.LogResponseSuccess(method, url, requestHeaders, resp.StatusCode, string(bodyBytes), latency)
		if successResp != nil {
			if err := hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, &DecodeError{ContentType: respContentType, Err: err}
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: bodyBytes}
	hc.logger.LogResponseError(method, url, requestHeaders, resp.StatusCode, string(bodyBytes), latency, statusErr)

	if errorResp != nil {
		if err := hc.unmarshalResponse(bodyBytes, respContentType, errorResp); err != nil {
			errorResp = nil
		}
	}

	return nil, errorResp, resp.StatusCode, statusErr
}

// unmarshalResponse unmarshals response body based on content type.
// Bodies are UTF-8 unless the Content-Type names another charset, in which case they are transcoded first.
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mainContentType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	}

	switch mainContentType {
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
	}

	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return json.Unmarshal(bodyBytes, target)
	}

	reader, err := charsetpkg.NewReaderLabel(label, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	return json.Unmarshal(decoded, target)
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for k := range header {
		flat[k] = header.Get(k)
	}
	return flat
}
