// Package yadict is a client for the Yandex Dictionary API
// (https://yandex.com/dev/dictionary/). The service exposes two endpoints:
// the list of supported language pairs and word lookup. Lookup is available
// both raw (the undecoded JSON object) and projected into a typed model.
//
// The client performs one blocking GET per call and keeps no state beyond
// the token and base URL, so a single Client is safe for concurrent use.
// It never retries, caches or logs; every failure is returned to the caller.
package yadict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production endpoint of the dictionary service.
const DefaultBaseURL = "https://dictionary.yandex.net/api/v1/dicservice.json"

const defaultTimeout = 10 * time.Second

// Client calls the dictionary service. Construct it with New or FromEnv;
// the zero value is not usable.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Use it to control the
// request timeout or the transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL points the client at a different service URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// New creates a client authenticating with the given API token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// fetchJSON performs the GET and returns the body on HTTP 200. Any other
// status means the body carries the service's own error envelope, which is
// classified before returning.
func (c *Client) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Op: "create request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyServiceError(body)
	}

	return body, nil
}

// classifyServiceError extracts the service error code from a non-200 body.
// The code lives inside the JSON, it is not the HTTP status.
func classifyServiceError(body []byte) error {
	var envelope struct {
		Code *int `json:"code"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return classifyDecodeError(err)
	}
	if envelope.Code == nil {
		return ErrInvalidDataFormat
	}
	return serviceError(*envelope.Code)
}

// classifyDecodeError separates malformed JSON from JSON of the wrong shape.
func classifyDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ErrInvalidDataFormat
	}
	return &ParseError{Err: err}
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, path)
}
