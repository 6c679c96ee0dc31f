// Package http provides the authenticated transport for the SuperFaktura
// API. It builds the SFAPI authorization header, executes the request under a
// fixed timeout, and folds every remote outcome, success or failure, into the
// uniform result envelope.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

const defaultUserAgent = "sfapi-go"

// Client is the authenticated HTTP client. It is safe for concurrent use;
// the credentials and base URL are fixed at construction.
type Client struct {
	baseURL    string
	creds      sfapi.Credentials
	httpClient *retryablehttp.Client
	logger     sfapi.Logger
	debug      bool
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger sfapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates an authenticated client for one credential tuple. This
// layer performs no retries: transient remote failures surface in the result
// envelope and are the caller's to handle.
func NewClient(baseURL string, creds sfapi.Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		creds:      creds,
		httpClient: retryClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the service URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) sfapi.Envelope {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) sfapi.Envelope {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) sfapi.Envelope {
	return c.Do(ctx, http.MethodPatch, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) sfapi.Envelope {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do executes one authenticated request. Network failures, timeouts and
// non-2xx responses are never raised; they all come back as the uniform
// failure envelope. A 2xx JSON body is decoded and returned unchanged.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) sfapi.Envelope {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return sfapi.FailureEnvelope(fmt.Sprintf("encoding request body: %v", err))
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return sfapi.FailureEnvelope(fmt.Sprintf("building request: %v", err))
	}

	req.Header.Set("Authorization", c.authorizationHeader())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if c.debug && c.logger != nil {
		c.logger.Debug("http request", map[string]interface{}{
			"method": method,
			"url":    fullURL,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sfapi.FailureEnvelope(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return sfapi.FailureEnvelope(fmt.Sprintf("reading response: %v", err))
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("http response", map[string]interface{}{
			"method": method,
			"url":    fullURL,
			"status": resp.StatusCode,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return sfapi.FailureEnvelope(fmt.Sprintf("%s %s: %s", method, path, resp.Status))
	}

	var decoded interface{}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return sfapi.FailureEnvelope(fmt.Sprintf("decoding response: %v", err))
	}

	if envelope, ok := decoded.(map[string]interface{}); ok {
		return envelope
	}

	// Some listing endpoints answer with a bare JSON array.
	return sfapi.Envelope{"data": decoded}
}

// authorizationHeader composes the SFAPI scheme value: ampersand-joined
// key=value pairs with the email and api key percent-encoded (both may
// contain '@', '+' and similar).
func (c *Client) authorizationHeader() string {
	pairs := []string{
		"email=" + url.QueryEscape(c.creds.Email),
		"apikey=" + url.QueryEscape(c.creds.APIKey),
		"module=" + c.creds.Module,
	}

	if c.creds.CompanyID != "" {
		pairs = append(pairs, "company_id="+c.creds.CompanyID)
	}

	return "SFAPI " + strings.Join(pairs, "&")
}
