package framework

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultRequestTimeout is the time limit for every request made by an APIClient, including
// reading the response body.
const DefaultRequestTimeout = time.Second * 10

// APIClient makes requests to the API under test. It does not retry anything: an I/O error or
// a timeout is returned to the caller as-is.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     Logger
}

// APIResponse is a completely read HTTP response.
type APIResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewAPIClient creates an APIClient. Request paths are appended to baseURL, so a base URL with a
// path prefix such as "https://example.com/api" is allowed. A zero timeout means
// DefaultRequestTimeout.
func NewAPIClient(baseURL string, timeout time.Duration, logger Logger) *APIClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = NullLogger()
	}
	return &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BaseURL returns the base URL that request paths are relative to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// WithLogger returns a copy of the client that logs to a different Logger.
func (c *APIClient) WithLogger(logger Logger) *APIClient {
	if logger == nil {
		logger = NullLogger()
	}
	c1 := *c
	c1.logger = logger
	return &c1
}

// URL returns the absolute URL for a request path.
func (c *APIClient) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Get sends a GET request.
func (c *APIClient) Get(ctx context.Context, path string) (APIResponse, error) {
	return c.do(ctx, "GET", path, nil)
}

// PostJSON sends a POST request whose body is payload converted to JSON with json.Marshal.
func (c *APIClient) PostJSON(ctx context.Context, path string, payload interface{}) (APIResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return APIResponse{}, fmt.Errorf("could not serialize request body: %w", err)
	}
	return c.do(ctx, "POST", path, data)
}

func (c *APIClient) do(ctx context.Context, method, path string, body []byte) (APIResponse, error) {
	url := c.URL(path)
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewBuffer(body)
		c.logger.Printf("%s %s with body: %s", method, url, string(body))
	} else {
		c.logger.Printf("%s %s", method, url)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return APIResponse{}, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("Request failed: %s", err)
		return APIResponse{}, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("Failed to read response body: %s", err)
		return APIResponse{}, fmt.Errorf("error reading response body: %w", err)
	}
	c.logger.Printf("Received HTTP %d in %s: %s", resp.StatusCode, time.Since(start), string(data))
	return APIResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// Text returns the response body as a string.
func (r APIResponse) Text() string {
	return string(r.Body)
}

// JSON parses the response body. Unlike ldvalue.Parse, it returns an error for malformed JSON
// instead of a null value.
func (r APIResponse) JSON() (ldvalue.Value, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return ldvalue.Null(), fmt.Errorf("malformed JSON response: %w", err)
	}
	return v, nil
}
